package ports

import (
	"context"

	"dispatch-service/internal/domain"
)

// Port: a boundary for storing and retrieving delivery vehicles.
//
// ListVehicles must return vehicles in insertion order; exact-distance
// ties during assignment are broken by vehicle iteration order.
type VehicleRepository interface {
	// Persist a batch of vehicles. Fails with ErrDuplicateID if any
	// vehicle's identifier is already stored; on failure nothing is persisted.
	SaveVehicles(ctx context.Context, vehicles []*domain.Vehicle) error

	// Retrieve all stored vehicles in insertion order.
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)

	// Remove all stored vehicles and return how many were removed.
	DeleteAllVehicles(ctx context.Context) (int64, error)
}
