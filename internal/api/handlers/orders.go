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

// OrderHandler exposes order intake, listing, and reset endpoints.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) Handle(w http.ResponseWriter, r *http.Request) {
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

// accept validates and stores a batch of orders.
func (h *OrderHandler) accept(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest

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

	if len(req.Orders) == 0 {
		writeError(w, r, http.StatusBadRequest, "orders must not be empty")
		return
	}

	orders := make([]*domain.Order, 0, len(req.Orders))
	highs, mediums, lows := 0, 0, 0

	for i, o := range req.Orders {
		order, err := orderFromDTO(o)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("orders[%d]: %v", i, err))
			return
		}

		switch order.Priority {
		case domain.PriorityHigh:
			highs++
		case domain.PriorityMedium:
			mediums++
		case domain.PriorityLow:
			lows++
		}

		orders = append(orders, order)
	}

	if err := h.Repo.SaveOrders(r.Context(), orders); err != nil {
		if errors.Is(err, ports.ErrDuplicateID) {
			writeError(w, r, http.StatusConflict, err.Error())
			return
		}
		log.Printf("save orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	msg := fmt.Sprintf(
		"Successfully saved %d orders (%d HIGH, %d MEDIUM, %d LOW priority)",
		len(orders), highs, mediums, lows,
	)
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: msg})
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListOrdersResponse{Orders: make([]dto.OrderDTO, 0, len(orders))}
	for _, o := range orders {
		res.Orders = append(res.Orders, dto.OrderDTO{
			OrderID:       o.OrderID,
			Latitude:      o.Position.Lat,
			Longitude:     o.Position.Lon,
			Address:       o.Address,
			PackageWeight: o.WeightGrams,
			Priority:      string(o.Priority),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) clear(w http.ResponseWriter, r *http.Request) {
	count, err := h.Repo.DeleteAllOrders(r.Context())
	if err != nil {
		log.Printf("delete orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Deleted %d orders", count),
	})
}

func orderFromDTO(o dto.OrderDTO) (*domain.Order, error) {
	if strings.TrimSpace(o.OrderID) == "" {
		return nil, errors.New("order_id must not be empty")
	}
	if o.Latitude < -90 || o.Latitude > 90 {
		return nil, fmt.Errorf("latitude %v is out of range [-90, 90]", o.Latitude)
	}
	if o.Longitude < -180 || o.Longitude > 180 {
		return nil, fmt.Errorf("longitude %v is out of range [-180, 180]", o.Longitude)
	}
	if o.PackageWeight <= 0 {
		return nil, fmt.Errorf("package_weight must be positive, got %d", o.PackageWeight)
	}

	priority, err := domain.ParsePriority(o.Priority)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		OrderID:     o.OrderID,
		Position:    domain.Coordinates{Lat: o.Latitude, Lon: o.Longitude},
		Address:     o.Address,
		WeightGrams: o.PackageWeight,
		Priority:    priority,
	}, nil
}
