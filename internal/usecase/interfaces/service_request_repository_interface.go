package interfaces

import (
	"context"
	"time"

	"vexadrive/internal/domain/entities"
)

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.
//
// Contract notes:
//   - Reads return the zero value (ID == 0) for unknown ids; the use case
//     maps that to its not-found error.
//   - UpdateStatus is conditional on the expected current status. When the
//     stored status no longer matches (a concurrent writer got there first)
//     the zero value is returned so the caller can re-read and decide.
//   - UpdateEstimatedDelivery bumps updated_at unconditionally.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id int64) (entities.ServiceRequest, error)
	ListByCustomer(ctx context.Context, customerUserID string) ([]entities.ServiceRequest, error)
	ListAll(ctx context.Context) ([]entities.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id int64, expected, next entities.ServiceStatus) (entities.ServiceRequest, error)
	UpdateEstimatedDelivery(ctx context.Context, id int64, etd time.Time) (entities.ServiceRequest, error)
	Delete(ctx context.Context, id int64) error
}
