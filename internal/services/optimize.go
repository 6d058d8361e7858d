package services

import (
	"fmt"
	"math"
	"sort"

	"dispatch-service/internal/domain"
)

// Optimize produces a complete dispatch plan for a snapshot of orders and
// vehicles using a greedy nearest-eligible-vehicle assignment.
//
// Orders are processed in priority order (HIGH first, heavier first within
// a priority) and each is committed to the nearest vehicle with enough
// remaining capacity. The algorithm never backtracks and does not attempt
// a globally optimal solution; it prioritizes determinism and simplicity
// over optimality.
//
// Empty inputs and unassignable orders are normal outcomes reported in the
// plan, never errors. The only error condition is an out-of-range
// coordinate (geo.InvalidCoordinateError) discovered while computing
// distances, which indicates an upstream data contract violation.
func Optimize(orders []*domain.Order, vehicles []*domain.Vehicle) (*domain.DispatchPlan, error) {
	if len(orders) == 0 {
		return emptyPlan("No orders to assign"), nil
	}
	if len(vehicles) == 0 {
		return emptyPlan("No vehicles available"), nil
	}

	sorted := sortOrders(orders)

	// One state per vehicle, kept in input order. Exact-distance ties are
	// broken by iteration order, so a map would make plans nondeterministic.
	states := make([]*vehicleState, 0, len(vehicles))
	for _, v := range vehicles {
		states = append(states, &vehicleState{vehicle: v})
	}

	matrix, err := buildDistanceMatrix(vehicles, sorted)
	if err != nil {
		return nil, fmt.Errorf("optimize dispatch: %w", err)
	}

	assignOrders(sorted, states, matrix)

	return buildPlan(states, len(sorted)), nil
}

// sortOrders returns a copy of orders sorted by priority descending, then
// package weight descending. The sort is stable: orders with equal
// priority and weight keep their input relative order.
//
// Heavier-first within a priority reduces fragmentation of remaining
// capacity; it is a tunable heuristic, not a correctness requirement.
func sortOrders(orders []*domain.Order) []*domain.Order {
	sorted := make([]*domain.Order, len(orders))
	copy(sorted, orders)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Priority.SortOrder(), sorted[j].Priority.SortOrder()
		if pi != pj {
			return pi > pj
		}
		return sorted[i].WeightGrams > sorted[j].WeightGrams
	})

	return sorted
}

// assignOrders runs the greedy pass: for each order, pick the eligible
// vehicle with the minimum precomputed distance. Strict < means the first
// vehicle encountered wins exact-distance ties. Orders that fit no
// vehicle's remaining capacity stay unassigned.
func assignOrders(sorted []*domain.Order, states []*vehicleState, matrix map[string]float64) {
	for _, order := range sorted {
		var best *vehicleState
		minDistance := math.MaxFloat64

		for _, state := range states {
			if state.remainingCapacity() < order.WeightGrams {
				continue
			}

			d := matrix[distanceKey(state.vehicle.VehicleID, order.OrderID)]
			if d < minDistance {
				minDistance = d
				best = state
			}
		}

		if best != nil {
			best.addOrder(order, minDistance)
		}
	}
}

// buildPlan assembles per-vehicle plans and the run summary. Vehicles with
// no assignments are omitted from the plan but still counted in
// TotalVehicles.
func buildPlan(states []*vehicleState, totalOrders int) *domain.DispatchPlan {
	vehiclePlans := make([]domain.VehiclePlan, 0, len(states))

	assignedOrders := 0
	usedVehicles := 0
	totalDistanceKm := 0.0
	totalUtilization := 0.0

	for _, state := range states {
		if len(state.assigned) == 0 {
			continue
		}

		usedVehicles++
		assignedOrders += len(state.assigned)
		totalDistanceKm += state.totalDistanceKm

		utilization := float64(state.currentLoad) * 100.0 / float64(state.vehicle.CapacityGrams)
		totalUtilization += utilization

		vehiclePlans = append(vehiclePlans, domain.VehiclePlan{
			VehicleID:       state.vehicle.VehicleID,
			TotalLoadGrams:  state.currentLoad,
			TotalDistanceKm: state.totalDistanceKm,
			AssignedOrders:  state.assigned,
			OrderCount:      len(state.assigned),
			UtilizationPct:  round2(utilization),
		})
	}

	averageUtilization := 0.0
	if usedVehicles > 0 {
		averageUtilization = round2(totalUtilization / float64(usedVehicles))
	}

	status := domain.PlanPartial
	if assignedOrders == totalOrders {
		status = domain.PlanSuccess
	}

	return &domain.DispatchPlan{
		Status:       status,
		Message:      "Dispatch plan generated successfully",
		VehiclePlans: vehiclePlans,
		Summary: domain.PlanSummary{
			TotalOrders:           totalOrders,
			AssignedOrders:        assignedOrders,
			UnassignedOrders:      totalOrders - assignedOrders,
			TotalVehicles:         len(states),
			UsedVehicles:          usedVehicles,
			TotalDistanceKm:       totalDistanceKm,
			AverageUtilizationPct: averageUtilization,
		},
	}
}

// emptyPlan is the terminal outcome for degenerate inputs. The summary is
// fully zeroed, matching the plan's empty dispatch list.
func emptyPlan(message string) *domain.DispatchPlan {
	return &domain.DispatchPlan{
		Status:       domain.PlanFailed,
		Message:      message,
		VehiclePlans: []domain.VehiclePlan{},
		Summary:      domain.PlanSummary{},
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
