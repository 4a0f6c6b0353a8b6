package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase/interfaces"
)

var (
	ErrBillPaymentNotFound        = errors.New("bill payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IBillPaymentUseCase lets a customer pay an uploaded bill through the
// payment gateway. The amount always comes from the stored bill, never from
// the caller payload.

type IBillPaymentUseCase interface {
	PayBill(ctx context.Context, serviceRequestID int64, payload json.RawMessage) (entities.BillPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillPayment, error)
	ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.BillPayment, error)
}

type BillPaymentUseCase struct {
	payments interfaces.IBillPaymentRepository
	bills    interfaces.IBillRepository
	gateway  interfaces.IPaymentGateway
}

var _ IBillPaymentUseCase = (*BillPaymentUseCase)(nil)

func NewBillPaymentUseCase(payments interfaces.IBillPaymentRepository, bills interfaces.IBillRepository, gateway interfaces.IPaymentGateway) *BillPaymentUseCase {
	return &BillPaymentUseCase{payments: payments, bills: bills, gateway: gateway}
}

func (u *BillPaymentUseCase) PayBill(ctx context.Context, serviceRequestID int64, payload json.RawMessage) (entities.BillPayment, error) {
	log.Printf("[payment][usecase] pay-bill start request=%d payload_len=%d", serviceRequestID, len(payload))
	if len(payload) == 0 || !json.Valid(payload) {
		return entities.BillPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.BillPayment{}, errors.New("payment gateway not configured")
	}

	bill, err := u.bills.GetByServiceRequest(ctx, serviceRequestID)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if bill.BillID == 0 {
		return entities.BillPayment{}, ErrBillNotFound
	}

	// The stored bill is the source of truth for the amount; the reference
	// ties the provider event back to the service request.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return entities.BillPayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%d", serviceRequestID)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Bill for service request %d", serviceRequestID)
	}
	reqMap["transaction_amount"] = bill.Amount
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed request=%d err=%v", serviceRequestID, err)
		if isGatewayUnauthorized(err) {
			return entities.BillPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.BillPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.BillPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success request=%d provider_payment_id=%s provider_status=%s", serviceRequestID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed request=%d err=%v", serviceRequestID, err)
	}

	p := entities.BillPayment{
		ID:                 providerPaymentID,
		ServiceRequestID:   serviceRequestID,
		Amount:             bill.Amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed request=%d payment_id=%s err=%v", serviceRequestID, p.ID, err)
		return entities.BillPayment{}, err
	}
	return created, nil
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "denied":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *BillPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillPayment{}, errors.New("invalid payment id")
	}
	p, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.BillPayment{}, err
	}
	if p.ID == "" {
		return entities.BillPayment{}, ErrBillPaymentNotFound
	}
	return p, nil
}

func (u *BillPaymentUseCase) ListByServiceRequest(ctx context.Context, serviceRequestID int64) ([]entities.BillPayment, error) {
	return u.payments.ListByServiceRequest(ctx, serviceRequestID)
}
