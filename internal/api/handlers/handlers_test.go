package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch-service/internal/adapters/repositories"
	"dispatch-service/internal/api/dto"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestOrderHandlerAccept(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	h := &OrderHandler{Repo: repo}

	body := `{"orders":[
		{"order_id":"O1","latitude":28.61,"longitude":77.21,"address":"CP","package_weight":3000,"priority":"HIGH"},
		{"order_id":"O2","latitude":28.70,"longitude":77.10,"package_weight":1500,"priority":"LOW"}
	]}`

	rec := postJSON(t, h.Handle, "/dispatch/orders", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var res dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(res.Message, "2 orders") {
		t.Errorf("message = %q, want it to count 2 orders", res.Message)
	}
	if !strings.Contains(res.Message, "1 HIGH") || !strings.Contains(res.Message, "1 LOW") {
		t.Errorf("message = %q, want priority counts", res.Message)
	}
}

func TestOrderHandlerRejectsDuplicateID(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	h := &OrderHandler{Repo: repo}

	body := `{"orders":[{"order_id":"O1","latitude":28.61,"longitude":77.21,"package_weight":3000,"priority":"HIGH"}]}`
	if rec := postJSON(t, h.Handle, "/dispatch/orders", body); rec.Code != http.StatusOK {
		t.Fatalf("first save: status = %d, want 200", rec.Code)
	}

	rec := postJSON(t, h.Handle, "/dispatch/orders", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate save: status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "O1") {
		t.Errorf("conflict body %q should name the duplicate id", rec.Body.String())
	}
}

func TestOrderHandlerRejectsInvalidPriority(t *testing.T) {
	h := &OrderHandler{Repo: repositories.NewMemoryRepository()}

	body := `{"orders":[{"order_id":"O1","latitude":28.61,"longitude":77.21,"package_weight":3000,"priority":"URGENT"}]}`
	rec := postJSON(t, h.Handle, "/dispatch/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "URGENT") {
		t.Errorf("error body %q should name the invalid priority", rec.Body.String())
	}
}

func TestOrderHandlerRejectsOutOfRangeLatitude(t *testing.T) {
	h := &OrderHandler{Repo: repositories.NewMemoryRepository()}

	body := `{"orders":[{"order_id":"O1","latitude":95.0,"longitude":77.21,"package_weight":3000,"priority":"HIGH"}]}`
	rec := postJSON(t, h.Handle, "/dispatch/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "out of range") {
		t.Errorf("error body %q should mention out of range", rec.Body.String())
	}
}

func TestOrderHandlerRejectsUnknownFields(t *testing.T) {
	h := &OrderHandler{Repo: repositories.NewMemoryRepository()}

	rec := postJSON(t, h.Handle, "/dispatch/orders", `{"orders":[],"extra":true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOrderHandlerMethodNotAllowed(t *testing.T) {
	h := &OrderHandler{Repo: repositories.NewMemoryRepository()}

	req := httptest.NewRequest(http.MethodPut, "/dispatch/orders", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); !strings.Contains(allow, http.MethodPost) {
		t.Errorf("Allow header = %q, want it to include POST", allow)
	}
}

func TestVehicleHandlerAcceptAndList(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	h := &VehicleHandler{Repo: repo}

	body := `{"vehicles":[
		{"vehicle_id":"V1","capacity":10000,"current_latitude":28.63,"current_longitude":77.22},
		{"vehicle_id":"V2","capacity":8000,"current_latitude":28.47,"current_longitude":77.50}
	]}`
	rec := postJSON(t, h.Handle, "/dispatch/vehicles", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var saved dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &saved); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(saved.Message, "18000 grams") {
		t.Errorf("message = %q, want total capacity 18000 grams", saved.Message)
	}

	req := httptest.NewRequest(http.MethodGet, "/dispatch/vehicles", nil)
	listRec := httptest.NewRecorder()
	h.Handle(listRec, req)

	var res dto.ListVehiclesResponse
	if err := json.Unmarshal(listRec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(res.Vehicles) != 2 {
		t.Fatalf("listed %d vehicles, want 2", len(res.Vehicles))
	}
	if res.Vehicles[0].VehicleID != "V1" {
		t.Errorf("first vehicle = %s, want V1 (insertion order)", res.Vehicles[0].VehicleID)
	}
}

func TestVehicleHandlerRejectsNonPositiveCapacity(t *testing.T) {
	h := &VehicleHandler{Repo: repositories.NewMemoryRepository()}

	body := `{"vehicles":[{"vehicle_id":"V1","capacity":0,"current_latitude":28.63,"current_longitude":77.22}]}`
	rec := postJSON(t, h.Handle, "/dispatch/vehicles", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanHandlerEndToEnd(t *testing.T) {
	repo := repositories.NewMemoryRepository()

	orderBody := `{"orders":[
		{"order_id":"O1","latitude":28.6,"longitude":77.2,"package_weight":5000,"priority":"HIGH"},
		{"order_id":"O2","latitude":28.6,"longitude":77.2,"package_weight":3000,"priority":"LOW"}
	]}`
	if rec := postJSON(t, (&OrderHandler{Repo: repo}).Handle, "/dispatch/orders", orderBody); rec.Code != http.StatusOK {
		t.Fatalf("save orders: status = %d", rec.Code)
	}

	vehicleBody := `{"vehicles":[{"vehicle_id":"V1","capacity":10000,"current_latitude":28.61,"current_longitude":77.21}]}`
	if rec := postJSON(t, (&VehicleHandler{Repo: repo}).Handle, "/dispatch/vehicles", vehicleBody); rec.Code != http.StatusOK {
		t.Fatalf("save vehicles: status = %d", rec.Code)
	}

	planHandler := &PlanHandler{Orders: repo, Vehicles: repo}
	req := httptest.NewRequest(http.MethodGet, "/dispatch/plan", nil)
	rec := httptest.NewRecorder()
	planHandler.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var plan dto.DispatchPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}

	if plan.Status != "SUCCESS" {
		t.Fatalf("status = %s, want SUCCESS", plan.Status)
	}
	if len(plan.DispatchPlan) != 1 {
		t.Fatalf("expected 1 vehicle plan, got %d", len(plan.DispatchPlan))
	}

	vp := plan.DispatchPlan[0]
	if vp.TotalLoad != 8000 {
		t.Errorf("total load = %d, want 8000", vp.TotalLoad)
	}
	if vp.UtilizationPercentage != 80.00 {
		t.Errorf("utilization = %v, want 80.00", vp.UtilizationPercentage)
	}
	if !strings.HasSuffix(vp.TotalDistance, " km") {
		t.Errorf("total distance %q should carry a km suffix", vp.TotalDistance)
	}
	for _, a := range vp.AssignedOrders {
		if !strings.HasSuffix(a.DistanceFromVehicle, " km") {
			t.Errorf("distance %q should carry a km suffix", a.DistanceFromVehicle)
		}
	}
	if plan.Summary.TotalDistanceCovered == "" {
		t.Error("summary total distance should be set")
	}
}

func TestPlanHandlerEmptyStores(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	planHandler := &PlanHandler{Orders: repo, Vehicles: repo}

	req := httptest.NewRequest(http.MethodGet, "/dispatch/plan", nil)
	rec := httptest.NewRecorder()
	planHandler.Plan(rec, req)

	// Degenerate input is a FAILED plan with 200, never an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var plan dto.DispatchPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if plan.Status != "FAILED" {
		t.Fatalf("status = %s, want FAILED", plan.Status)
	}
	if !strings.Contains(plan.Message, "No orders") {
		t.Errorf("message = %q, want it to mention No orders", plan.Message)
	}
	if plan.Summary.TotalDistanceCovered != "0.00 km" {
		t.Errorf("total distance = %q, want \"0.00 km\"", plan.Summary.TotalDistanceCovered)
	}
}
