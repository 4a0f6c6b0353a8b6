package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "vexadrive/internal/adapter/http/dto/request"
	response "vexadrive/internal/adapter/http/dto/response"
	"vexadrive/internal/adapter/http/middleware"
	"vexadrive/internal/usecase"
	"vexadrive/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
	errInvalidVehicleID      = pkg.NewDomainErrorSimple("INVALID_VEHICLE_ID", "Invalid vehicle id", http.StatusBadRequest)
)

// VehicleHandler handles the vehicle registry endpoints: customers manage
// their own vehicles, admins list and search across all of them.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// RegisterVehicle handles POST /customer/vehicles.
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var payload request.VehicleCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Register(c.Request.Context(), user.ID, payload.Model, payload.NumberPlate, payload.Type, payload.Color)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

// GetMyVehicles handles GET /customer/vehicles.
func (h *VehicleHandler) GetMyVehicles(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	vehicles, err := h.usecase.ListByCustomer(c.Request.Context(), user.ID)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

// UpdateVehicle handles PUT /customer/vehicles/:id.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	var payload request.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.Update(c.Request.Context(), user.ID, id, payload.Model, payload.NumberPlate, payload.Type, payload.Color)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// DeleteVehicle handles DELETE /customer/vehicles/:id.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), user.ID, id); err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}

// GetVehicleByID handles GET /vehicles/:id, available to any authenticated
// user.
func (h *VehicleHandler) GetVehicleByID(c *gin.Context) {
	id, ok := vehicleIDParam(c)
	if !ok {
		return
	}

	v, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

// GetAllVehicles handles GET /admin/vehicles.
func (h *VehicleHandler) GetAllVehicles(c *gin.Context) {
	vehicles, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

// SearchVehicles handles GET /admin/vehicles/search. Filters arrive as query
// parameters; blank filters match everything.
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	filter := usecase.VehicleSearchFilter{
		Model:          c.Query("model"),
		NumberPlate:    c.Query("number_plate"),
		Type:           c.Query("type"),
		Color:          c.Query("color"),
		CustomerUserID: c.Query("customer_user_id"),
	}

	vehicles, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func vehicleIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidVehicleID.HTTPStatus, errInvalidVehicleID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleInput):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle input", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
