package entities

import "time"

// Notification is an append-only record attached to a service request.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - GSI1 (user_id-index): user_id
//   - GSI2 (service_request_id-index): service_request_id
//
// Notifications exist only as side effects of lifecycle events; the sole
// user-driven mutation is the IsRead flag, toggled by the recipient.

type Notification struct {
	ID               int64     `json:"id"`
	ServiceRequestID int64     `json:"service_request_id"`
	UserID           string    `json:"user_id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}
