package handlers

import (
	"log"
	"net/http"

	"dispatch-service/internal/api/dto"
	"dispatch-service/internal/domain"
	"dispatch-service/internal/geo"
	"dispatch-service/internal/ports"
	"dispatch-service/internal/services"
)

// PlanHandler runs the optimization engine over the stored orders and
// vehicles and returns the resulting dispatch plan.
type PlanHandler struct {
	Orders   ports.OrderRepository
	Vehicles ports.VehicleRepository
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	plan, err := services.GeneratePlan(r.Context(), h.Orders, h.Vehicles)
	if err != nil {
		log.Printf("generate plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// Empty stores come back as a FAILED plan, not an HTTP error: callers
	// detect "could not dispatch" from the plan status, never from a 5xx.
	writeJSON(w, r, http.StatusOK, planToDTO(plan))
}

func planToDTO(plan *domain.DispatchPlan) dto.DispatchPlanResponse {
	vehiclePlans := make([]dto.VehiclePlanResponse, 0, len(plan.VehiclePlans))

	for _, vp := range plan.VehiclePlans {
		assigned := make([]dto.AssignedOrderResponse, 0, len(vp.AssignedOrders))
		for _, a := range vp.AssignedOrders {
			assigned = append(assigned, dto.AssignedOrderResponse{
				OrderID:             a.OrderID,
				Address:             a.Address,
				PackageWeight:       a.WeightGrams,
				Priority:            string(a.Priority),
				DistanceFromVehicle: geo.FormatKm(a.DistanceKm),
			})
		}

		vehiclePlans = append(vehiclePlans, dto.VehiclePlanResponse{
			VehicleID:             vp.VehicleID,
			TotalLoad:             vp.TotalLoadGrams,
			TotalDistance:         geo.FormatKm(vp.TotalDistanceKm),
			AssignedOrders:        assigned,
			OrderCount:            vp.OrderCount,
			UtilizationPercentage: vp.UtilizationPct,
		})
	}

	return dto.DispatchPlanResponse{
		Status:       string(plan.Status),
		Message:      plan.Message,
		DispatchPlan: vehiclePlans,
		Summary: dto.PlanSummaryResponse{
			TotalOrders:          plan.Summary.TotalOrders,
			AssignedOrders:       plan.Summary.AssignedOrders,
			UnassignedOrders:     plan.Summary.UnassignedOrders,
			TotalVehicles:        plan.Summary.TotalVehicles,
			UsedVehicles:         plan.Summary.UsedVehicles,
			TotalDistanceCovered: geo.FormatKm(plan.Summary.TotalDistanceKm),
			AverageUtilization:   plan.Summary.AverageUtilizationPct,
		},
	}
}
