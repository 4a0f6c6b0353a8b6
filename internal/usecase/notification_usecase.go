package usecase

import (
	"context"
	"errors"
	"strings"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrNotificationForbidden = errors.New("notification does not belong to the caller")
	ErrInvalidUserID         = errors.New("invalid user id")
)

// INotificationUseCase exposes the recipient-facing notification operations.
// Only the recipient may toggle the read flag.

type INotificationUseCase interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, callerUserID string, id int64) (entities.Notification, error)
	MarkUnread(ctx context.Context, callerUserID string, id int64) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUser(ctx, userID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, callerUserID string, id int64) (entities.Notification, error) {
	return u.setRead(ctx, callerUserID, id, true)
}

func (u *NotificationUseCase) MarkUnread(ctx context.Context, callerUserID string, id int64) (entities.Notification, error) {
	return u.setRead(ctx, callerUserID, id, false)
}

func (u *NotificationUseCase) setRead(ctx context.Context, callerUserID string, id int64, isRead bool) (entities.Notification, error) {
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == 0 {
		return entities.Notification{}, ErrNotificationNotFound
	}
	if n.UserID != callerUserID {
		return entities.Notification{}, ErrNotificationForbidden
	}
	if n.IsRead == isRead {
		return n, nil
	}
	updated, err := u.repo.SetRead(ctx, id, isRead)
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == 0 {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}
