package entities

import "time"

// Bill is the single invoice attached to a service request.
//
// Storage model (DynamoDB):
//   - PK: service_request_id (number)
//
// Using the owning request id as partition key guarantees at most one bill
// per request at the storage level; the conditional put in the repository is
// the enforcement boundary for the attach-once rule. Bills are immutable once
// uploaded and are removed only when the owning request is deleted.

type Bill struct {
	BillID           int64     `json:"bill_id"`
	ServiceRequestID int64     `json:"service_request_id"`
	FileName         string    `json:"file_name"`
	ContentType      string    `json:"content_type"`
	StorageKey       string    `json:"storage_key"`
	Amount           float64   `json:"amount"`
	UploadedAt       time.Time `json:"uploaded_at"`
}
