package handlers

import (
	"errors"
	"net/http"

	response "vexadrive/internal/adapter/http/dto/response"
	"vexadrive/internal/adapter/http/middleware"
	"vexadrive/internal/usecase"
	"vexadrive/pkg"

	"github.com/gin-gonic/gin"
)

// BillPaymentHandler handles customer payments against uploaded bills.
// The raw JSON body is forwarded to the payment gateway after the use case
// enriches it from the stored bill.

type BillPaymentHandler struct {
	payments usecase.IBillPaymentUseCase
	requests usecase.IServiceRequestUseCase
}

func NewBillPaymentHandler(payments usecase.IBillPaymentUseCase, requests usecase.IServiceRequestUseCase) *BillPaymentHandler {
	return &BillPaymentHandler{payments: payments, requests: requests}
}

// PayBill handles POST /customer/requests/:id/bill/payments.
func (h *BillPaymentHandler) PayBill(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	r, err := h.requests.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if r.CustomerUserID != user.ID {
		c.JSON(errNotRequestOwner.HTTPStatus, errNotRequestOwner.ToHTTPError())
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		appErr := mapBillPaymentError(usecase.ErrInvalidPaymentPayload)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payment, err := h.payments.PayBill(c.Request.Context(), id, payload)
	if err != nil {
		appErr := mapBillPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBillPayment(payment))
}

// ListPayments handles GET /customer/requests/:id/bill/payments.
func (h *BillPaymentHandler) ListPayments(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	r, err := h.requests.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if r.CustomerUserID != user.ID {
		c.JSON(errNotRequestOwner.HTTPStatus, errNotRequestOwner.ToHTTPError())
		return
	}

	payments, err := h.payments.ListByServiceRequest(c.Request.Context(), id)
	if err != nil {
		appErr := mapBillPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillPayments(payments))
}

func mapBillPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_BAD_REQUEST", "Payment gateway rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAUTHORIZED", "Payment gateway credentials rejected", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
