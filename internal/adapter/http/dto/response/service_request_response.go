package response

import (
	"time"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase"
)

type ServiceRequestResponse struct {
	ID                    int64      `json:"id"`
	CustomerUserID        string     `json:"customer_user_id"`
	VehicleID             int64      `json:"vehicle_id"`
	ProblemDescription    string     `json:"problem_description"`
	ServiceAddress        string     `json:"service_address"`
	ServiceDate           time.Time  `json:"service_date"`
	Status                string     `json:"status"`
	AllowedNext           []string   `json:"allowed_next"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`

	Bill *BillResponse `json:"bill,omitempty"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	allowed := entities.AllowedNext(r.Status)
	next := make([]string, 0, len(allowed))
	for _, s := range allowed {
		next = append(next, string(s))
	}
	return ServiceRequestResponse{
		ID:                    r.ID,
		CustomerUserID:        r.CustomerUserID,
		VehicleID:             r.VehicleID,
		ProblemDescription:    r.ProblemDescription,
		ServiceAddress:        r.ServiceAddress,
		ServiceDate:           r.ServiceDate,
		Status:                string(r.Status),
		AllowedNext:           next,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func FromServiceRequests(rs []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

// ServiceRequestSearchResponse is the admin search row: the request plus the
// vehicle and owner details it was matched through.
type ServiceRequestSearchResponse struct {
	ServiceRequestResponse
	VehicleModel       string `json:"vehicle_model"`
	VehicleNumberPlate string `json:"vehicle_number_plate"`
	VehicleType        string `json:"vehicle_type"`
	OwnerName          string `json:"owner_name"`
	OwnerEmail         string `json:"owner_email"`
}

func FromRequestSearchResult(r usecase.RequestSearchResult) ServiceRequestSearchResponse {
	return ServiceRequestSearchResponse{
		ServiceRequestResponse: FromServiceRequest(r.Request),
		VehicleModel:           r.Vehicle.Model,
		VehicleNumberPlate:     r.Vehicle.NumberPlate,
		VehicleType:            r.Vehicle.Type,
		OwnerName:              r.Owner.Name,
		OwnerEmail:             r.Owner.Email,
	}
}

func FromRequestSearchResults(rs []usecase.RequestSearchResult) []ServiceRequestSearchResponse {
	out := make([]ServiceRequestSearchResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequestSearchResult(r))
	}
	return out
}
