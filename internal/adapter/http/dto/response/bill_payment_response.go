package response

import (
	"time"

	"vexadrive/internal/domain/entities"
)

type BillPaymentResponse struct {
	ID               string    `json:"id"`
	ServiceRequestID int64     `json:"service_request_id"`
	Amount           float64   `json:"amount"`
	Date             time.Time `json:"date"`
	Status           string    `json:"status"`
}

func FromBillPayment(p entities.BillPayment) BillPaymentResponse {
	return BillPaymentResponse{
		ID:               p.ID,
		ServiceRequestID: p.ServiceRequestID,
		Amount:           p.Amount,
		Date:             p.Date,
		Status:           string(p.Status),
	}
}

func FromBillPayments(ps []entities.BillPayment) []BillPaymentResponse {
	out := make([]BillPaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromBillPayment(p))
	}
	return out
}
