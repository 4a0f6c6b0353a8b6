package interfaces

import (
	"context"

	"vexadrive/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle. It doubles
// as the vehicle registry collaborator: GetByID answers the ownership check
// performed when a service request is created.

type IVehicleRepository interface {
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (entities.Vehicle, error)
	ListByCustomer(ctx context.Context, customerUserID string) ([]entities.Vehicle, error)
	ListAll(ctx context.Context) ([]entities.Vehicle, error)
}
