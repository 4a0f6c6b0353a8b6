package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	request "vexadrive/internal/adapter/http/dto/request"
	response "vexadrive/internal/adapter/http/dto/response"
	"vexadrive/internal/adapter/http/middleware"
	"vexadrive/internal/domain/entities"
	"vexadrive/internal/usecase"
	"vexadrive/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request payload", http.StatusBadRequest)
	errInvalidRequestID      = pkg.NewDomainErrorSimple("INVALID_REQUEST_ID", "Invalid service request id", http.StatusBadRequest)
	errNotRequestOwner       = pkg.NewDomainErrorSimple("FORBIDDEN", "Service request belongs to another customer", http.StatusForbidden)
	errInvalidBillAmount     = pkg.NewDomainErrorSimple("INVALID_BILL_AMOUNT", "Bill amount must be a positive number", http.StatusBadRequest)
)

// ServiceRequestHandler handles HTTP requests for the service request
// lifecycle, on both the customer and the admin surface. Role gating happens
// in the route setup; ownership checks for customer reads happen here.

type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// CreateRequest handles POST /customer/requests.
func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.ServiceRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	serviceDate, err := payload.ResolveServiceDate()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), user.ID, payload.VehicleID, payload.ProblemDescription, payload.ServiceAddress, serviceDate)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// GetMyRequests handles GET /customer/requests.
func (h *ServiceRequestHandler) GetMyRequests(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	requests, err := h.usecase.ListByCustomer(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(requests))
}

// GetMyRequestByID handles GET /customer/requests/:id.
func (h *ServiceRequestHandler) GetMyRequestByID(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if r.CustomerUserID != user.ID {
		c.JSON(errNotRequestOwner.HTTPStatus, errNotRequestOwner.ToHTTPError())
		return
	}

	res := response.FromServiceRequest(r)
	if bill, err := h.usecase.GetBill(c.Request.Context(), id); err == nil {
		b := response.FromBill(bill)
		res.Bill = &b
	}
	c.JSON(http.StatusOK, res)
}

// DownloadBill handles GET /customer/requests/:id/bill/file.
func (h *ServiceRequestHandler) DownloadBill(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	r, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if r.CustomerUserID != user.ID {
		c.JSON(errNotRequestOwner.HTTPStatus, errNotRequestOwner.ToHTTPError())
		return
	}

	bill, data, err := h.usecase.DownloadBill(c.Request.Context(), id)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", bill.FileName))
	c.Data(http.StatusOK, bill.ContentType, data)
}

// GetAllRequests handles GET /admin/requests.
func (h *ServiceRequestHandler) GetAllRequests(c *gin.Context) {
	requests, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(requests))
}

// SearchRequests handles GET /admin/requests/search. Filters arrive as query
// parameters; blank filters match everything.
func (h *ServiceRequestHandler) SearchRequests(c *gin.Context) {
	filter := usecase.RequestSearchFilter{
		VehicleType:   c.Query("vehicle_type"),
		PlateNumber:   c.Query("plate_number"),
		CustomerEmail: c.Query("customer_email"),
	}

	results, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestSearchResults(results))
}

// GetCustomers handles GET /admin/customers.
func (h *ServiceRequestHandler) GetCustomers(c *gin.Context) {
	customers, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(customers))
}

// UpdateStatus handles PATCH /admin/requests/:id/status.
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	next, ok := resolveStatus(payload.Status)
	if !ok {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.TransitionStatus(c.Request.Context(), id, next)
	if err != nil {
		var itErr *usecase.IllegalTransitionError
		if errors.As(err, &itErr) {
			allowed := make([]string, 0, len(itErr.AllowedNext))
			for _, s := range itErr.AllowedNext {
				allowed = append(allowed, string(s))
			}
			appErr := pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Invalid status transition", http.StatusConflict)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(map[string]interface{}{
				"current":      string(itErr.Current),
				"allowed_next": allowed,
			}))
			return
		}
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

// UpdateEstimatedDelivery handles PATCH /admin/requests/:id/estimated-delivery.
func (h *ServiceRequestHandler) UpdateEstimatedDelivery(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	var payload request.EtdUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}
	etd, err := payload.ResolveDate()
	if err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetEstimatedDelivery(c.Request.Context(), id, etd)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(updated))
}

// UploadBill handles POST /admin/requests/:id/bill (multipart form with a
// "file" part and an "amount" field). The amount is what payments will later
// charge, so it must be a positive number.
func (h *ServiceRequestHandler) UploadBill(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_BILL_FILE", "No file uploaded or file is empty", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(errInvalidBillAmount.HTTPStatus, errInvalidBillAmount.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	bill, err := h.usecase.AttachBill(c.Request.Context(), id, fileHeader.Filename, contentType, amount, data)
	if err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBill(bill))
}

// DeleteRequest handles DELETE /admin/requests/:id.
func (h *ServiceRequestHandler) DeleteRequest(c *gin.Context) {
	id, ok := requestIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapServiceRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service request deleted successfully"})
}

func requestIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRequestID.HTTPStatus, errInvalidRequestID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func resolveStatus(v string) (entities.ServiceStatus, bool) {
	switch entities.ServiceStatus(v) {
	case entities.StatusRequestCreated, entities.StatusServiceInProgress, entities.StatusServiceCompleted:
		return entities.ServiceStatus(v), true
	}
	return "", false
}

func mapServiceRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrEmptyBillFile):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid service request input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBillAmount):
		return errInvalidBillAmount
	case errors.Is(err, usecase.ErrInvalidVehicle):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE", "Customers can only raise requests for their own vehicles", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillAlreadyExists):
		return pkg.NewDomainErrorSimple("BILL_ALREADY_EXISTS", "Bill already exists for this service request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
