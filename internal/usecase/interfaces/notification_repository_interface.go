package interfaces

import (
	"context"

	"vexadrive/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// ListByUser returns newest first; ListByServiceRequest returns creation
// order (the aggregate's append-only view). DeleteByServiceRequest supports
// the application-level cascade when a request is deleted.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id int64) (entities.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.Notification, error)
	SetRead(ctx context.Context, id int64, isRead bool) (entities.Notification, error)
	DeleteByServiceRequest(ctx context.Context, serviceRequestID int64) error
}
