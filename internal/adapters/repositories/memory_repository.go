package repositories

import (
	"context"
	"fmt"
	"sync"

	"dispatch-service/internal/domain"
	"dispatch-service/internal/ports"
)

// In-memory implementation of both repository ports. Used as a test double
// for handlers and services; safe for concurrent use.
//
// Records are kept in slices so ListOrders/ListVehicles preserve insertion
// order, matching the SQL repositories.
type MemoryRepository struct {
	mu       sync.RWMutex
	orders   []*domain.Order
	vehicles []*domain.Vehicle
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) SaveOrders(ctx context.Context, orders []*domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(m.orders)+len(orders))
	for _, o := range m.orders {
		seen[o.OrderID] = struct{}{}
	}
	for _, o := range orders {
		if _, ok := seen[o.OrderID]; ok {
			return fmt.Errorf("save orders: order %q: %w", o.OrderID, ports.ErrDuplicateID)
		}
		seen[o.OrderID] = struct{}{}
	}

	m.orders = append(m.orders, orders...)
	return nil
}

func (m *MemoryRepository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *MemoryRepository) DeleteAllOrders(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := int64(len(m.orders))
	m.orders = nil
	return count, nil
}

func (m *MemoryRepository) SaveVehicles(ctx context.Context, vehicles []*domain.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(m.vehicles)+len(vehicles))
	for _, v := range m.vehicles {
		seen[v.VehicleID] = struct{}{}
	}
	for _, v := range vehicles {
		if _, ok := seen[v.VehicleID]; ok {
			return fmt.Errorf("save vehicles: vehicle %q: %w", v.VehicleID, ports.ErrDuplicateID)
		}
		seen[v.VehicleID] = struct{}{}
	}

	m.vehicles = append(m.vehicles, vehicles...)
	return nil
}

func (m *MemoryRepository) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Vehicle, len(m.vehicles))
	copy(out, m.vehicles)
	return out, nil
}

func (m *MemoryRepository) DeleteAllVehicles(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := int64(len(m.vehicles))
	m.vehicles = nil
	return count, nil
}

var (
	_ ports.OrderRepository   = (*MemoryRepository)(nil)
	_ ports.VehicleRepository = (*MemoryRepository)(nil)
)
