package response

import (
	"time"

	"vexadrive/internal/domain/entities"
)

type NotificationResponse struct {
	ID               int64     `json:"id"`
	ServiceRequestID int64     `json:"service_request_id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		ServiceRequestID: n.ServiceRequestID,
		Title:            n.Title,
		Message:          n.Message,
		IsRead:           n.IsRead,
		CreatedAt:        n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
