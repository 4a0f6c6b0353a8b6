package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	response "vexadrive/internal/adapter/http/dto/response"
	"vexadrive/internal/adapter/http/middleware"
	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase"
	"vexadrive/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNotificationID = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION_ID", "Invalid notification id", http.StatusBadRequest)

// NotificationHandler handles the recipient-facing notification endpoints,
// shared by the customer and admin route groups.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// GetNotifications handles GET /notifications.
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	notifs, err := h.usecase.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(notifs))
}

// MarkRead handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.setRead(c, h.usecase.MarkRead)
}

// MarkUnread handles PATCH /notifications/:id/unread.
func (h *NotificationHandler) MarkUnread(c *gin.Context) {
	h.setRead(c, h.usecase.MarkUnread)
}

func (h *NotificationHandler) setRead(c *gin.Context, update func(ctx context.Context, callerUserID string, id int64) (entities.Notification, error)) {
	user, _ := middleware.CurrentUser(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidNotificationID.HTTPStatus, errInvalidNotificationID.ToHTTPError())
		return
	}

	updated, err := update(c.Request.Context(), user.ID, id)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(updated))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Notification belongs to another user", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
