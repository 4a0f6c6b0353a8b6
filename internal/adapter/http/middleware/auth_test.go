package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vexadrive/internal/domain/entities"
	mock_interfaces "vexadrive/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)

		r := gin.New()
		r.GET("/ping", Authentication(identity), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		identity.EXPECT().Authenticate(gomock.Any(), "bad-token").Return(entities.User{}, errors.New("invalid token"))

		r := gin.New()
		r.GET("/ping", Authentication(identity), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("stores the caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		identity.EXPECT().Authenticate(gomock.Any(), "good-token").Return(entities.User{ID: "cust-1", Role: entities.RoleCustomer}, nil)

		r := gin.New()
		r.GET("/ping", Authentication(identity), func(c *gin.Context) {
			user, ok := CurrentUser(c)
			if !ok || user.ID != "cust-1" {
				t.Fatalf("expected the authenticated caller, got %+v (%v)", user, ok)
			}
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no caller", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin", RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong role", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			SetCurrentUser(c, entities.User{ID: "cust-1", Role: entities.RoleCustomer})
		}, RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("matching role", func(t *testing.T) {
		r := gin.New()
		r.GET("/admin", func(c *gin.Context) {
			SetCurrentUser(c, entities.User{ID: "adm-1", Role: entities.RoleAdmin})
		}, RequireRole(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
