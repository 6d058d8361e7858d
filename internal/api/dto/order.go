package dto

type OrderDTO struct {
	OrderID       string  `json:"order_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Address       string  `json:"address,omitempty"`
	PackageWeight int     `json:"package_weight"`
	Priority      string  `json:"priority"`
}

type OrderRequest struct {
	Orders []OrderDTO `json:"orders"`
}

type ListOrdersResponse struct {
	Orders []OrderDTO `json:"orders"`
}
