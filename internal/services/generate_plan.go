package services

import (
	"context"
	"fmt"

	"dispatch-service/internal/domain"
	"dispatch-service/internal/platform/obs"
	"dispatch-service/internal/ports"
)

// GeneratePlan loads the current order and vehicle snapshots and runs the
// optimization engine over them.
//
// Both snapshots are passed to the engine unreordered: repositories return
// records in insertion order, and the engine's distance tie-breaking
// depends on that order staying stable.
func GeneratePlan(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	vehicleRepo ports.VehicleRepository,
) (_ *domain.DispatchPlan, err error) {
	defer obs.Time(ctx, "services.GeneratePlan")(&err)

	orders, err := orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate plan: list orders: %w", err)
	}

	vehicles, err := vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate plan: list vehicles: %w", err)
	}

	plan, err := Optimize(orders, vehicles)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	return plan, nil
}
