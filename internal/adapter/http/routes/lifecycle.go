package routes

import (
	"vexadrive/internal/adapter/http/handlers"
	"vexadrive/internal/adapter/http/middleware"
	"vexadrive/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomer = "/customer"
	PathAdmin    = "/admin"
)

func addLifecycleRoutes(rg *gin.RouterGroup, requestHandler *handlers.ServiceRequestHandler, notificationHandler *handlers.NotificationHandler, vehicleHandler *handlers.VehicleHandler, billPaymentHandler *handlers.BillPaymentHandler) {
	customer := rg.Group(PathCustomer, middleware.RequireRole(entities.RoleCustomer))
	{
		customer.POST("/requests", requestHandler.CreateRequest)
		customer.GET("/requests", requestHandler.GetMyRequests)
		customer.GET("/requests/:id", requestHandler.GetMyRequestByID)
		customer.GET("/requests/:id/bill/file", requestHandler.DownloadBill)
		customer.POST("/requests/:id/bill/payments", billPaymentHandler.PayBill)
		customer.GET("/requests/:id/bill/payments", billPaymentHandler.ListPayments)

		customer.POST("/vehicles", vehicleHandler.RegisterVehicle)
		customer.GET("/vehicles", vehicleHandler.GetMyVehicles)
		customer.PUT("/vehicles/:id", vehicleHandler.UpdateVehicle)
		customer.DELETE("/vehicles/:id", vehicleHandler.DeleteVehicle)
	}

	admin := rg.Group(PathAdmin, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/requests", requestHandler.GetAllRequests)
		admin.GET("/requests/search", requestHandler.SearchRequests)
		admin.PATCH("/requests/:id/status", requestHandler.UpdateStatus)
		admin.PATCH("/requests/:id/estimated-delivery", requestHandler.UpdateEstimatedDelivery)
		admin.POST("/requests/:id/bill", requestHandler.UploadBill)
		admin.DELETE("/requests/:id", requestHandler.DeleteRequest)
		admin.GET("/customers", requestHandler.GetCustomers)
		admin.GET("/vehicles", vehicleHandler.GetAllVehicles)
		admin.GET("/vehicles/search", vehicleHandler.SearchVehicles)
	}

	// Vehicle details back notification and request views on both surfaces,
	// so the lookup is open to any authenticated user.
	rg.GET("/vehicles/:id", vehicleHandler.GetVehicleByID)

	// Notifications are readable by any authenticated user; the use case
	// enforces that only the recipient can flip the read flag.
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", notificationHandler.GetNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkRead)
		notifications.PATCH("/:id/unread", notificationHandler.MarkUnread)
	}
}
