package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vexadrive/internal/adapter/http/handlers/mocks"
	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_GetNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.User{ID: "cust-1", Role: entities.RoleCustomer}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().ListByUser(gomock.Any(), "cust-1").Return([]entities.Notification{
		{ID: 2, ServiceRequestID: 42, Title: "Service Status Updated"},
		{ID: 1, ServiceRequestID: 42, Title: "Service Request Created"},
	}, nil)

	r := gin.New()
	r.GET("/v1/notifications", asUser(customer), h.GetNotifications)

	req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res) != 2 || res[0]["title"] != "Service Status Updated" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.User{ID: "cust-1", Role: entities.RoleCustomer}

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", asUser(customer), h.MarkRead)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/abc/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("another recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), "cust-1", int64(5)).Return(entities.Notification{}, usecase.ErrNotificationForbidden)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", asUser(customer), h.MarkRead)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/5/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), "cust-1", int64(5)).Return(entities.Notification{ID: 5, UserID: "cust-1", IsRead: true}, nil)

		r := gin.New()
		r.PATCH("/v1/notifications/:id/read", asUser(customer), h.MarkRead)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/5/read", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["is_read"] != true {
			t.Fatalf("expected is_read true, got %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_MarkUnread(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.User{ID: "cust-1", Role: entities.RoleCustomer}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	uc.EXPECT().MarkUnread(gomock.Any(), "cust-1", int64(5)).Return(entities.Notification{ID: 5, UserID: "cust-1"}, nil)

	r := gin.New()
	r.PATCH("/v1/notifications/:id/unread", asUser(customer), h.MarkUnread)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/5/unread", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
