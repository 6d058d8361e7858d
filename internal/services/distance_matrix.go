package services

import (
	"fmt"

	"dispatch-service/internal/domain"
	"dispatch-service/internal/geo"
)

// buildDistanceMatrix precomputes the distance from every vehicle to every
// order, keyed "vehicleId:orderId". Distances are pure functions of the
// coordinates, so computing them up front avoids repeated trigonometric
// evaluation during assignment without changing any result.
//
// The matrix holds exactly |vehicles| x |orders| entries and is read-only
// once built.
func buildDistanceMatrix(vehicles []*domain.Vehicle, orders []*domain.Order) (map[string]float64, error) {
	matrix := make(map[string]float64, len(vehicles)*len(orders))

	for _, v := range vehicles {
		for _, o := range orders {
			d, err := geo.DistanceKm(v.Position.Lat, v.Position.Lon, o.Position.Lat, o.Position.Lon)
			if err != nil {
				return nil, fmt.Errorf(
					"build distance matrix: vehicle %q to order %q: %w",
					v.VehicleID, o.OrderID, err,
				)
			}
			matrix[distanceKey(v.VehicleID, o.OrderID)] = d
		}
	}

	return matrix, nil
}

func distanceKey(vehicleID, orderID string) string {
	return vehicleID + ":" + orderID
}
