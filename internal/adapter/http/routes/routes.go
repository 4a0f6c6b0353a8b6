package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	_ "vexadrive/docs" // This will be auto-generated
	"vexadrive/internal/adapter/http/handlers"
	"vexadrive/internal/adapter/http/middleware"
	repository2 "vexadrive/internal/adapter/persistence/repository"
	"vexadrive/internal/infrastructure/database"
	"vexadrive/internal/infrastructure/identity"
	"vexadrive/internal/infrastructure/payments"
	"vexadrive/internal/infrastructure/storage"
	"vexadrive/internal/usecase"
	"vexadrive/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	billRepo := repository2.NewBillDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	billPaymentRepo := repository2.NewBillPaymentDynamoRepository(ddb)

	identityProvider, err := identity.NewJWTIdentityProvider(userRepo, os.Getenv("JWT_SIGNING_KEY"))
	if err != nil {
		log.Fatalf("Failed to configure identity provider: %v", err)
	}

	bucket := os.Getenv("BILLS_BUCKET")
	if bucket == "" {
		bucket = "vexadrive-bills"
	}
	fileStorage, err := storage.NewS3FileStorage(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to configure bill storage: %v", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	requestUseCase := usecase.NewServiceRequestUseCase(requestRepo, notificationRepo, billRepo, vehicleRepo, identityProvider, fileStorage)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)
	billPaymentUseCase := usecase.NewBillPaymentUseCase(billPaymentRepo, billRepo, paymentGateway)

	requestHandler := handlers.NewServiceRequestHandler(requestUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	billPaymentHandler := handlers.NewBillPaymentHandler(billPaymentUseCase, requestUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authenticated := v1.Group("", middleware.Authentication(identityProvider))
	addLifecycleRoutes(authenticated, requestHandler, notificationHandler, vehicleHandler, billPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
