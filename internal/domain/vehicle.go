package domain

// Represents a delivery vehicle available for dispatch.
// A Vehicle has a unique identifier, a carrying capacity in grams, and its
// current position. Vehicles are immutable inputs to planning; per-run
// load accounting lives in the optimization engine, not on the record.
type Vehicle struct {
	VehicleID     string
	CapacityGrams int
	Position      Coordinates
}
