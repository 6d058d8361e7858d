package services

import "dispatch-service/internal/domain"

// vehicleState accumulates one vehicle's load, travel distance, and
// assigned orders during a single optimization run. States are created
// per run and discarded afterwards; the engine keeps nothing across calls,
// so concurrent invocations never share mutable state.
type vehicleState struct {
	vehicle         *domain.Vehicle
	currentLoad     int
	totalDistanceKm float64
	assigned        []domain.AssignedOrder
}

// Invariant: currentLoad never exceeds the vehicle's capacity.
func (s *vehicleState) remainingCapacity() int {
	return s.vehicle.CapacityGrams - s.currentLoad
}

func (s *vehicleState) addOrder(order *domain.Order, distanceKm float64) {
	s.currentLoad += order.WeightGrams
	s.totalDistanceKm += distanceKm
	s.assigned = append(s.assigned, domain.AssignedOrder{
		OrderID:     order.OrderID,
		Address:     order.Address,
		WeightGrams: order.WeightGrams,
		Priority:    order.Priority,
		DistanceKm:  distanceKm,
	})
}
