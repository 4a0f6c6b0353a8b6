package handlers

import (
	"bytes"
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

func TestBillPaymentHandler_PayBill(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.User{ID: "cust-1", Role: entities.RoleCustomer}
	payload := `{"payment_method_id":"pix","payer":{"email":"joana@example.com"}}`

	t.Run("another customer's request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIBillPaymentUseCase(ctrl)
		requests := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewBillPaymentHandler(payments, requests)

		requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{ID: 42, CustomerUserID: "someone-else"}, nil)

		r := gin.New()
		r.POST("/v1/customer/requests/:id/bill/payments", asUser(customer), h.PayBill)

		req := httptest.NewRequest(http.MethodPost, "/v1/customer/requests/42/bill/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIBillPaymentUseCase(ctrl)
		requests := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewBillPaymentHandler(payments, requests)

		requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

		r := gin.New()
		r.POST("/v1/customer/requests/:id/bill/payments", asUser(customer), h.PayBill)

		req := httptest.NewRequest(http.MethodPost, "/v1/customer/requests/42/bill/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("no bill uploaded yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIBillPaymentUseCase(ctrl)
		requests := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewBillPaymentHandler(payments, requests)

		requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{ID: 42, CustomerUserID: "cust-1"}, nil)
		payments.EXPECT().PayBill(gomock.Any(), int64(42), gomock.Any()).Return(entities.BillPayment{}, usecase.ErrBillNotFound)

		r := gin.New()
		r.POST("/v1/customer/requests/:id/bill/payments", asUser(customer), h.PayBill)

		req := httptest.NewRequest(http.MethodPost, "/v1/customer/requests/42/bill/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIBillPaymentUseCase(ctrl)
		requests := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewBillPaymentHandler(payments, requests)

		requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{ID: 42, CustomerUserID: "cust-1"}, nil)
		payments.EXPECT().PayBill(gomock.Any(), int64(42), gomock.Any()).DoAndReturn(
			func(_ any, _ int64, body json.RawMessage) (entities.BillPayment, error) {
				if !json.Valid(body) {
					t.Fatalf("handler forwarded invalid json: %s", body)
				}
				return entities.BillPayment{ID: "mp-1", ServiceRequestID: 42, Amount: 150.5, Status: entities.PaymentStatusApproved}, nil
			})

		r := gin.New()
		r.POST("/v1/customer/requests/:id/bill/payments", asUser(customer), h.PayBill)

		req := httptest.NewRequest(http.MethodPost, "/v1/customer/requests/42/bill/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["id"] != "mp-1" || res["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway unauthorized maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mocks.NewMockIBillPaymentUseCase(ctrl)
		requests := mocks.NewMockIServiceRequestUseCase(ctrl)
		h := NewBillPaymentHandler(payments, requests)

		requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{ID: 42, CustomerUserID: "cust-1"}, nil)
		payments.EXPECT().PayBill(gomock.Any(), int64(42), gomock.Any()).Return(entities.BillPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		r := gin.New()
		r.POST("/v1/customer/requests/:id/bill/payments", asUser(customer), h.PayBill)

		req := httptest.NewRequest(http.MethodPost, "/v1/customer/requests/42/bill/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestBillPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.User{ID: "cust-1", Role: entities.RoleCustomer}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mocks.NewMockIBillPaymentUseCase(ctrl)
	requests := mocks.NewMockIServiceRequestUseCase(ctrl)
	h := NewBillPaymentHandler(payments, requests)

	requests.EXPECT().GetByID(gomock.Any(), int64(42)).Return(entities.ServiceRequest{ID: 42, CustomerUserID: "cust-1"}, nil)
	payments.EXPECT().ListByServiceRequest(gomock.Any(), int64(42)).Return([]entities.BillPayment{{ID: "mp-1"}, {ID: "mp-2"}}, nil)

	r := gin.New()
	r.GET("/v1/customer/requests/:id/bill/payments", asUser(customer), h.ListPayments)

	req := httptest.NewRequest(http.MethodGet, "/v1/customer/requests/42/bill/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(res))
	}
}
