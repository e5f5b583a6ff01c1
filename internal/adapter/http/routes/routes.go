package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "renovahub/docs" // This will be auto-generated
	"renovahub/internal/adapter/http/handlers"
	"renovahub/internal/adapter/persistence/repository"
	"renovahub/internal/infrastructure/database"
	"renovahub/internal/infrastructure/identity"
	"renovahub/internal/infrastructure/notifications"
	"renovahub/internal/usecase"
	"renovahub/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	requestRepo := repository.NewRenovationRequestDynamoRepository(ddb)
	bidRepo := repository.NewBidDynamoRepository(ddb)
	interestRepo := repository.NewInspectionInterestDynamoRepository(ddb)
	selectionRepo := repository.NewSelectionDynamoRepository(ddb)

	directory := identity.NewUserDirectory(ddb)

	var notifier interfaces.INotifier
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Printf("AWS config unavailable, notifications disabled: %v", err)
	} else {
		sesNotifier, err := notifications.NewSESNotifier(awsCfg, os.Getenv("NOTIFICATIONS_SENDER"))
		if err != nil {
			log.Printf("SES notifier not configured: %v", err)
		} else {
			notifier = sesNotifier
		}
	}

	lifecycleUseCase := usecase.NewRequestLifecycleUseCase(requestRepo, interestRepo, directory, notifier)
	bidUseCase := usecase.NewBidUseCase(bidRepo, requestRepo, directory)
	selectionUseCase := usecase.NewSelectionUseCase(requestRepo, bidRepo, selectionRepo, directory, notifier)
	sweepUseCase := usecase.NewSweepUseCase(requestRepo, lifecycleUseCase)

	requestHandler := handlers.NewRenovationRequestHandler(lifecycleUseCase, selectionUseCase)
	bidHandler := handlers.NewBidHandler(bidUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(sweepUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, requestHandler, bidHandler, maintenanceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
