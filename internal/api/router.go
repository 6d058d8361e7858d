package api

import (
	"net/http"

	"dispatch-service/internal/api/handlers"
	"dispatch-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(orders ports.OrderRepository, vehicles ports.VehicleRepository) http.Handler {
	mux := http.NewServeMux()

	orderHandler := &handlers.OrderHandler{Repo: orders}
	vehicleHandler := &handlers.VehicleHandler{Repo: vehicles}
	planHandler := &handlers.PlanHandler{Orders: orders, Vehicles: vehicles}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/dispatch/orders", orderHandler.Handle)
	mux.HandleFunc("/dispatch/vehicles", vehicleHandler.Handle)
	mux.HandleFunc("/dispatch/plan", planHandler.Plan)

	return loggingMiddleware(mux)
}
