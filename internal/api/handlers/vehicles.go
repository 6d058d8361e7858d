package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"dispatch-service/internal/api/dto"
	"dispatch-service/internal/domain"
	"dispatch-service/internal/ports"
)

// VehicleHandler exposes fleet intake, listing, and reset endpoints.
type VehicleHandler struct {
	Repo ports.VehicleRepository
}

func (h *VehicleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.accept(w, r)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.clear(w, r)
	default:
		w.Header().Set("Allow", strings.Join([]string{http.MethodPost, http.MethodGet, http.MethodDelete}, ", "))
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// accept validates and stores a batch of vehicles.
func (h *VehicleHandler) accept(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Vehicles) == 0 {
		writeError(w, r, http.StatusBadRequest, "vehicles must not be empty")
		return
	}

	vehicles := make([]*domain.Vehicle, 0, len(req.Vehicles))
	totalCapacity := 0

	for i, v := range req.Vehicles {
		vehicle, err := vehicleFromDTO(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("vehicles[%d]: %v", i, err))
			return
		}

		totalCapacity += vehicle.CapacityGrams
		vehicles = append(vehicles, vehicle)
	}

	if err := h.Repo.SaveVehicles(r.Context(), vehicles); err != nil {
		if errors.Is(err, ports.ErrDuplicateID) {
			writeError(w, r, http.StatusConflict, err.Error())
			return
		}
		log.Printf("save vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	msg := fmt.Sprintf(
		"Successfully saved %d vehicles (Total capacity: %d grams)",
		len(vehicles), totalCapacity,
	)
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: msg})
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Repo.ListVehicles(r.Context())
	if err != nil {
		log.Printf("list vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleDTO, 0, len(vehicles))}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleDTO{
			VehicleID:        v.VehicleID,
			Capacity:         v.CapacityGrams,
			CurrentLatitude:  v.Position.Lat,
			CurrentLongitude: v.Position.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) clear(w http.ResponseWriter, r *http.Request) {
	count, err := h.Repo.DeleteAllVehicles(r.Context())
	if err != nil {
		log.Printf("delete vehicles failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Deleted %d vehicles", count),
	})
}

func vehicleFromDTO(v dto.VehicleDTO) (*domain.Vehicle, error) {
	if strings.TrimSpace(v.VehicleID) == "" {
		return nil, errors.New("vehicle_id must not be empty")
	}
	if v.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", v.Capacity)
	}
	if v.CurrentLatitude < -90 || v.CurrentLatitude > 90 {
		return nil, fmt.Errorf("current_latitude %v is out of range [-90, 90]", v.CurrentLatitude)
	}
	if v.CurrentLongitude < -180 || v.CurrentLongitude > 180 {
		return nil, fmt.Errorf("current_longitude %v is out of range [-180, 180]", v.CurrentLongitude)
	}

	return &domain.Vehicle{
		VehicleID:     v.VehicleID,
		CapacityGrams: v.Capacity,
		Position:      domain.Coordinates{Lat: v.CurrentLatitude, Lon: v.CurrentLongitude},
	}, nil
}
