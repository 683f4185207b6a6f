package routes

import (
	"log"
	"strconv"
	"time"
	_ "umzug_backoffice/docs" // This will be auto-generated
	"umzug_backoffice/internal/adapter/http/handlers"
	repository2 "umzug_backoffice/internal/adapter/persistence/repository"
	"umzug_backoffice/internal/config"
	"umzug_backoffice/internal/infrastructure/database"
	"umzug_backoffice/internal/infrastructure/documents"
	"umzug_backoffice/internal/infrastructure/mail"
	"umzug_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(cfg)

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.CustomersTable)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, customerRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, cfg.CustomerCacheTTL, time.Now)

	renderer := documents.NewRenderer()
	mailer := mail.NewSMTPMailer(cfg, logger)
	documentUseCase := usecase.NewDocumentUseCase(quoteRepo, customerRepo, renderer, mailer, logger)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	serviceHandler := handlers.NewServiceHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, documentHandler)
	addCustomerRoutes(v1, customerHandler)
	addServiceRoutes(v1, serviceHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
