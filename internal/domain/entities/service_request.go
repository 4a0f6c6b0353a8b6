package entities

import "time"

// ServiceStatus represents the lifecycle state of a service request.
//
// Domain notes:
//   - Transitions are monotonic: created -> in progress -> completed.
//   - A request in the same status may be "transitioned" to itself (no-op).
//   - ServiceCompleted is terminal.

type ServiceStatus string

const (
	StatusRequestCreated    ServiceStatus = "RequestCreated"
	StatusServiceInProgress ServiceStatus = "ServiceInProgress"
	StatusServiceCompleted  ServiceStatus = "ServiceCompleted"
)

// allowedNext is the full transition table. Statuses missing from the map
// have no outgoing edges.
var allowedNext = map[ServiceStatus][]ServiceStatus{
	StatusRequestCreated:    {StatusServiceInProgress},
	StatusServiceInProgress: {StatusServiceCompleted},
	StatusServiceCompleted:  {},
}

// CanTransition reports whether a request may move from one status to another.
// Same-status transitions are always allowed (idempotent no-op).
func CanTransition(from, to ServiceStatus) bool {
	if from == to {
		return true
	}
	for _, next := range allowedNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the statuses reachable from the given one, excluding
// the no-op self transition. Terminal statuses return an empty slice.
func AllowedNext(from ServiceStatus) []ServiceStatus {
	next, ok := allowedNext[from]
	if !ok {
		return []ServiceStatus{}
	}
	out := make([]ServiceStatus, len(next))
	copy(out, next)
	return out
}

// ServiceRequest is the aggregate root of the lifecycle engine.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// CustomerUserID, VehicleID and the customer-supplied fields are immutable
// after creation; Status and EstimatedDeliveryDate mutate only through the
// lifecycle use case.

type ServiceRequest struct {
	ID                 int64         `json:"id"`
	CustomerUserID     string        `json:"customer_user_id"`
	VehicleID          int64         `json:"vehicle_id"`
	ProblemDescription string        `json:"problem_description"`
	ServiceAddress     string        `json:"service_address"`
	ServiceDate        time.Time     `json:"service_date"`
	Status             ServiceStatus `json:"status"`

	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
