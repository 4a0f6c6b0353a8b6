package response

import (
	"time"

	"vexadrive/internal/domain/entities"
)

type BillResponse struct {
	BillID           int64     `json:"bill_id"`
	ServiceRequestID int64     `json:"service_request_id"`
	FileName         string    `json:"file_name"`
	ContentType      string    `json:"content_type"`
	Amount           float64   `json:"amount"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		BillID:           b.BillID,
		ServiceRequestID: b.ServiceRequestID,
		FileName:         b.FileName,
		ContentType:      b.ContentType,
		Amount:           b.Amount,
		UploadedAt:       b.UploadedAt,
	}
}
