package domain

// Represents a single delivery order handled by the system.
// An Order has a unique identifier, a delivery position, a package weight
// in grams, and a dispatch priority. Orders are immutable inputs to
// planning; the optimization engine never mutates them.
type Order struct {
	OrderID     string
	Position    Coordinates
	Address     string
	WeightGrams int
	Priority    Priority
}
