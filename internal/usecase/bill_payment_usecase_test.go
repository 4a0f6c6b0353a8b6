package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vexadrive/internal/domain/entities"
	mock_interfaces "vexadrive/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillPaymentUseCase_PayBill(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"joana@example.com"}}`)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillPaymentUseCase(nil, nil, gateway)

		_, err := uc.PayBill(context.Background(), 42, nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
		_, err = uc.PayBill(context.Background(), 42, json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("no bill uploaded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillPaymentUseCase(nil, bills, gateway)

		bills.EXPECT().GetByServiceRequest(gomock.Any(), int64(42)).Return(entities.Bill{}, nil)

		_, err := uc.PayBill(context.Background(), 42, payload)
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("amount comes from the stored bill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIBillPaymentRepository(ctrl)
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillPaymentUseCase(payments, bills, gateway)

		bills.EXPECT().GetByServiceRequest(gomock.Any(), int64(42)).Return(entities.Bill{BillID: 99, ServiceRequestID: 42, Amount: 150.5}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sent json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(sent, &m); err != nil {
					t.Fatalf("gateway received invalid json: %v", err)
				}
				if m["transaction_amount"] != 150.5 {
					t.Fatalf("expected amount from the bill, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "42" {
					t.Fatalf("expected external reference 42, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillPayment{})).DoAndReturn(
			func(_ context.Context, p entities.BillPayment) (entities.BillPayment, error) {
				if p.ID != "mp-1" || p.ServiceRequestID != 42 || p.Amount != 150.5 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected status: %s", p.Status)
				}
				return p, nil
			})

		got, err := uc.PayBill(context.Background(), 42, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-1" {
			t.Fatalf("unexpected payment id: %s", got.ID)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillPaymentUseCase(nil, bills, gateway)

		bills.EXPECT().GetByServiceRequest(gomock.Any(), int64(42)).Return(entities.Bill{BillID: 99, Amount: 10}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.PayBill(context.Background(), 42, payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bills := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillPaymentUseCase(nil, bills, gateway)

		bills.EXPECT().GetByServiceRequest(gomock.Any(), int64(42)).Return(entities.Bill{BillID: 99, Amount: 10}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.PayBill(context.Background(), 42, payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestPaymentStatusFromProvider(t *testing.T) {
	cases := []struct {
		in   string
		want entities.PaymentStatus
	}{
		{"approved", entities.PaymentStatusApproved},
		{"ACCREDITED", entities.PaymentStatusApproved},
		{"rejected", entities.PaymentStatusDenied},
		{"cancelled", entities.PaymentStatusDenied},
		{"in_process", entities.PaymentStatusPending},
		{"", entities.PaymentStatusPending},
	}
	for _, tc := range cases {
		if got := paymentStatusFromProvider(tc.in); got != tc.want {
			t.Fatalf("paymentStatusFromProvider(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestBillPaymentUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIBillPaymentRepository(ctrl)
		uc := NewBillPaymentUseCase(payments, nil, nil)

		payments.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.BillPayment{}, nil)

		if _, err := uc.GetByID(context.Background(), "mp-1"); !errors.Is(err, ErrBillPaymentNotFound) {
			t.Fatalf("expected ErrBillPaymentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIBillPaymentRepository(ctrl)
		uc := NewBillPaymentUseCase(payments, nil, nil)

		payments.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.BillPayment{ID: "mp-1"}, nil)

		got, err := uc.GetByID(context.Background(), "mp-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-1" {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})
}
