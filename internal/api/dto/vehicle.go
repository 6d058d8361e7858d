package dto

type VehicleDTO struct {
	VehicleID        string  `json:"vehicle_id"`
	Capacity         int     `json:"capacity"`
	CurrentLatitude  float64 `json:"current_latitude"`
	CurrentLongitude float64 `json:"current_longitude"`
}

type VehicleRequest struct {
	Vehicles []VehicleDTO `json:"vehicles"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleDTO `json:"vehicles"`
}
