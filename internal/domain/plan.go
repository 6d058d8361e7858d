package domain

// Overall outcome of one optimization run.
type PlanStatus string

const (
	// Every order was assigned to a vehicle.
	PlanSuccess PlanStatus = "SUCCESS"
	// At least one order could not be assigned due to capacity exhaustion.
	PlanPartial PlanStatus = "PARTIAL"
	// Degenerate input: no orders, or no vehicles.
	PlanFailed PlanStatus = "FAILED"
)

// A single order placed on a vehicle, annotated with its distance from
// the vehicle's position at planning time.
type AssignedOrder struct {
	OrderID     string
	Address     string
	WeightGrams int
	Priority    Priority
	DistanceKm  float64
}

// Planned workload for one vehicle. Only vehicles with at least one
// assigned order appear in a DispatchPlan.
type VehiclePlan struct {
	VehicleID       string
	TotalLoadGrams  int
	TotalDistanceKm float64
	AssignedOrders  []AssignedOrder
	OrderCount      int
	// Assigned load as a percentage of capacity, rounded to 2 decimals.
	UtilizationPct float64
}

// Aggregate counts and metrics across the whole run.
type PlanSummary struct {
	TotalOrders           int
	AssignedOrders        int
	UnassignedOrders      int
	TotalVehicles         int
	UsedVehicles          int
	TotalDistanceKm       float64
	AverageUtilizationPct float64
}

// Represents the complete output of one optimization run.
// A DispatchPlan is immutable planning data: it is built once at the end
// of the run and never mutated afterwards.
type DispatchPlan struct {
	Status       PlanStatus
	Message      string
	VehiclePlans []VehiclePlan
	Summary      PlanSummary
}
