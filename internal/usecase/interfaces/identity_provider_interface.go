package interfaces

import (
	"context"

	"vexadrive/internal/domain/entities"
)

// IIdentityProvider abstracts the external identity/role system.
//
// Authenticate resolves a bearer token to the calling user; token issuance
// and validation internals live behind this port. GetUserByID feeds
// notification content (display name, email); ListUsersInRole feeds the
// admin fan-out on request creation.

type IIdentityProvider interface {
	Authenticate(ctx context.Context, token string) (entities.User, error)
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	ListUsersInRole(ctx context.Context, role entities.UserRole) ([]entities.User, error)
}
