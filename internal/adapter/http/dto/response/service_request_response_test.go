package response

import (
	"testing"
	"time"

	"vexadrive/internal/domain/entities"
)

func TestFromServiceRequest(t *testing.T) {
	now := time.Now().UTC()
	etd := now.Add(72 * time.Hour)
	r := entities.ServiceRequest{
		ID:                    42,
		CustomerUserID:        "cust-1",
		VehicleID:             7,
		ProblemDescription:    "engine noise",
		ServiceAddress:        "Rua A, 1",
		ServiceDate:           now,
		Status:                entities.StatusServiceInProgress,
		EstimatedDeliveryDate: &etd,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	res := FromServiceRequest(r)
	if res.ID != 42 || res.CustomerUserID != "cust-1" || res.VehicleID != 7 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "ServiceInProgress" {
		t.Fatalf("unexpected status: %q", res.Status)
	}
	if len(res.AllowedNext) != 1 || res.AllowedNext[0] != "ServiceCompleted" {
		t.Fatalf("unexpected allowed next: %v", res.AllowedNext)
	}
	if res.EstimatedDeliveryDate == nil || !res.EstimatedDeliveryDate.Equal(etd) {
		t.Fatalf("unexpected estimated delivery: %v", res.EstimatedDeliveryDate)
	}
	if res.Bill != nil {
		t.Fatalf("expected no bill by default, got %+v", res.Bill)
	}
}

func TestFromServiceRequest_TerminalStatus(t *testing.T) {
	res := FromServiceRequest(entities.ServiceRequest{ID: 42, Status: entities.StatusServiceCompleted})
	if len(res.AllowedNext) != 0 {
		t.Fatalf("expected empty allowed next, got %v", res.AllowedNext)
	}
}

func TestFromServiceRequests(t *testing.T) {
	out := FromServiceRequests([]entities.ServiceRequest{
		{ID: 1, Status: entities.StatusRequestCreated},
		{ID: 2, Status: entities.StatusServiceCompleted},
	})
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("unexpected responses: %+v", out)
	}
}
