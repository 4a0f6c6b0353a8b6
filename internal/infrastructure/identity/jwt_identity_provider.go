package identity

import (
	"context"
	"errors"
	"log"
	"strings"

	"vexadrive/internal/adapter/persistence/repository"
	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSigningKey = errors.New("missing JWT_SIGNING_KEY")
	ErrInvalidToken      = errors.New("invalid token")
	ErrUnknownUser       = errors.New("unknown user")
)

// JWTIdentityProvider resolves bearer tokens to users.
//
// Token issuance lives with the external identity service; this provider only
// verifies the HMAC signature, extracts the subject claim and loads the
// profile row. Role and profile data come from the users table.

type JWTIdentityProvider struct {
	users      *repository.UserDynamoRepository
	signingKey []byte
}

var _ interfaces.IIdentityProvider = (*JWTIdentityProvider)(nil)

func NewJWTIdentityProvider(users *repository.UserDynamoRepository, signingKey string) (*JWTIdentityProvider, error) {
	if strings.TrimSpace(signingKey) == "" {
		return nil, ErrMissingSigningKey
	}
	return &JWTIdentityProvider{users: users, signingKey: []byte(signingKey)}, nil
}

func (p *JWTIdentityProvider) Authenticate(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrInvalidToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		log.Printf("[identity][jwt] token parse failed err=%v", err)
		return entities.User{}, ErrInvalidToken
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return entities.User{}, ErrInvalidToken
	}
	return p.GetUserByID(ctx, subject)
}

func (p *JWTIdentityProvider) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	u, err := p.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if u.ID == "" {
		return entities.User{}, ErrUnknownUser
	}
	return u, nil
}

func (p *JWTIdentityProvider) ListUsersInRole(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	return p.users.ListByRole(ctx, role)
}
