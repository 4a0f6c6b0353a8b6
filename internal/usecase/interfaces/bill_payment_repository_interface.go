package interfaces

import (
	"context"

	"vexadrive/internal/domain/entities"
)

// IBillPaymentRepository abstracts DynamoDB persistence for BillPayment.

type IBillPaymentRepository interface {
	Create(ctx context.Context, p entities.BillPayment) (entities.BillPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillPayment, error)
	ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.BillPayment, error)
}
