package interfaces

import (
	"context"

	"vexadrive/internal/domain/entities"
)

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// Create performs a conditional put keyed by service_request_id; when a bill
// already exists for the request it returns the zero value so the caller can
// map that to its duplicate-attach error. This is the storage-level
// enforcement of the one-bill-per-request rule.

type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByServiceRequest(ctx context.Context, serviceRequestID int64) (entities.Bill, error)
	DeleteByServiceRequest(ctx context.Context, serviceRequestID int64) error
}
