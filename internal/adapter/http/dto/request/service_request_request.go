package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// ServiceRequestCreateRequest is the customer payload for raising a request.
type ServiceRequestCreateRequest struct {
	VehicleID          int64  `json:"vehicle_id" binding:"required"`
	ProblemDescription string `json:"problem_description" binding:"required"`
	ServiceAddress     string `json:"service_address" binding:"required"`
	ServiceDate        string `json:"service_date" binding:"required"`
}

func (r ServiceRequestCreateRequest) ResolveServiceDate() (time.Time, error) {
	return parseDate(r.ServiceDate)
}

// StatusUpdateRequest carries the admin's target status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// EtdUpdateRequest carries the admin's estimated delivery date.
type EtdUpdateRequest struct {
	EstimatedDeliveryDate string `json:"estimated_delivery_date" binding:"required"`
}

func (r EtdUpdateRequest) ResolveDate() (time.Time, error) {
	return parseDate(r.EstimatedDeliveryDate)
}

// parseDate accepts both full RFC 3339 timestamps and plain dates, which is
// what the UI sends for service/delivery dates.
func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}
