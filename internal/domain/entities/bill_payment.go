package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillPayment records a customer payment against an uploaded bill.
//
// Storage model (DynamoDB):
//   - PK: id (string, provider payment id)
//   - GSI1 (service_request_id-index): service_request_id
//
// ProviderPayloadRaw keeps the original provider body (JSON) for
// traceability/audit; ProviderPayload is an optional parsed representation.

type BillPayment struct {
	ID               string        `json:"id"`
	ServiceRequestID int64         `json:"service_request_id"`
	Amount           float64       `json:"amount"`
	Date             time.Time     `json:"date"`
	Status           PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
