package dto

// Wire format of a dispatch plan. Distances are rendered as "12.34 km"
// strings; utilization percentages stay numeric, rounded to 2 decimals.

type AssignedOrderResponse struct {
	OrderID             string `json:"order_id"`
	Address             string `json:"address,omitempty"`
	PackageWeight       int    `json:"package_weight"`
	Priority            string `json:"priority"`
	DistanceFromVehicle string `json:"distance_from_vehicle"`
}

type VehiclePlanResponse struct {
	VehicleID             string                  `json:"vehicle_id"`
	TotalLoad             int                     `json:"total_load"`
	TotalDistance         string                  `json:"total_distance"`
	AssignedOrders        []AssignedOrderResponse `json:"assigned_orders"`
	OrderCount            int                     `json:"order_count"`
	UtilizationPercentage float64                 `json:"utilization_percentage"`
}

type PlanSummaryResponse struct {
	TotalOrders          int     `json:"total_orders"`
	AssignedOrders       int     `json:"assigned_orders"`
	UnassignedOrders     int     `json:"unassigned_orders"`
	TotalVehicles        int     `json:"total_vehicles"`
	UsedVehicles         int     `json:"used_vehicles"`
	TotalDistanceCovered string  `json:"total_distance_covered"`
	AverageUtilization   float64 `json:"average_utilization"`
}

type DispatchPlanResponse struct {
	Status       string                `json:"status"`
	Message      string                `json:"message"`
	DispatchPlan []VehiclePlanResponse `json:"dispatch_plan"`
	Summary      PlanSummaryResponse   `json:"summary"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
