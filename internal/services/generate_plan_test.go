package services

import (
	"context"
	"testing"

	"dispatch-service/internal/adapters/repositories"
	"dispatch-service/internal/domain"
)

func TestGeneratePlanFromRepositories(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	ctx := context.Background()

	err := repo.SaveOrders(ctx, []*domain.Order{
		order("O1", 28.61, 77.21, 4000, domain.PriorityHigh),
		order("O2", 28.70, 77.10, 2500, domain.PriorityLow),
	})
	if err != nil {
		t.Fatalf("save orders: %v", err)
	}

	err = repo.SaveVehicles(ctx, []*domain.Vehicle{
		vehicle("V1", 10000, 28.60, 77.20),
	})
	if err != nil {
		t.Fatalf("save vehicles: %v", err)
	}

	plan, err := GeneratePlan(ctx, repo, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Status != domain.PlanSuccess {
		t.Fatalf("status = %s, want SUCCESS", plan.Status)
	}
	if plan.Summary.AssignedOrders != 2 {
		t.Errorf("assigned = %d, want 2", plan.Summary.AssignedOrders)
	}
	if plan.Summary.TotalVehicles != 1 || plan.Summary.UsedVehicles != 1 {
		t.Errorf("vehicle counts = %d/%d, want 1 used of 1", plan.Summary.UsedVehicles, plan.Summary.TotalVehicles)
	}
}

func TestGeneratePlanEmptyStores(t *testing.T) {
	repo := repositories.NewMemoryRepository()

	plan, err := GeneratePlan(context.Background(), repo, repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Status != domain.PlanFailed {
		t.Fatalf("status = %s, want FAILED", plan.Status)
	}
}
