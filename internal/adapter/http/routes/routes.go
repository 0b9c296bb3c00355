package routes

import (
	"context"
	_ "estimate_request_service/docs" // generated by swag init
	"estimate_request_service/internal/adapter/http/handlers"
	"estimate_request_service/internal/adapter/http/middleware"
	"estimate_request_service/internal/adapter/persistence/repository"
	"estimate_request_service/internal/authz"
	"estimate_request_service/internal/config"
	"estimate_request_service/internal/infrastructure/chat"
	"estimate_request_service/internal/infrastructure/database"
	"estimate_request_service/internal/infrastructure/mail"
	"estimate_request_service/internal/logger"
	"estimate_request_service/internal/notification"
	"estimate_request_service/internal/security"
	"estimate_request_service/internal/usecase"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const chatRetryAttempts = 5

// Run wires the infrastructure and serves the API until the listener fails.
func Run(cfg config.Config) error {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	closeFn, err := getRoutes(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	logger.Info("starting server", "port", cfg.ServerPort)
	if err := router.Run(":" + strconv.Itoa(cfg.ServerPort)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

func getRoutes(cfg config.Config) (func(), error) {
	ctx := context.Background()

	db, err := database.ConnectRelational(cfg)
	if err != nil {
		return nil, err
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	estimateRequestRepo := repository.NewEstimateRequestGormRepository(db)
	userRepo := repository.NewUserGormRepository(db)
	catalogRepo := repository.NewCatalogGormRepository(db)
	settingsRepo := repository.NewCompanySettingsGormRepository(db)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable)

	chatPublisher := chat.Connect(ctx, chat.ConnectionOptions{
		URL:           cfg.RabbitMQURL,
		RetryAttempts: chatRetryAttempts,
		Delay:         time.Second,
		Logger:        logger.WithService("chat"),
	}, cfg.ChatExchange)

	dispatcher := notification.NewDispatcher(
		settingsRepo,
		chat.UserHandleDirectory{},
		notificationRepo,
		mail.New(cfg.SendGridAPIKey, cfg.MailFromAddress, cfg.MailFromName),
		chat.NewQueue(chatPublisher, cfg.AppName),
		notification.AppInfo{Name: cfg.AppName, URL: cfg.AppURL},
		cfg.DefaultLocale,
	)

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, every bearer token will be rejected")
	}
	tokenManager := security.NewTokenManager(cfg.JWTSecret)
	gate := authz.NewDefaultGate()

	estimateRequestUseCase := usecase.NewEstimateRequestUseCase(estimateRequestRepo, userRepo, catalogRepo, dispatcher, gate)
	userUseCase := usecase.NewUserUseCase(userRepo, security.NewBcryptHasher(), dispatcher, gate)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, gate)

	estimateRequestHandler := handlers.NewEstimateRequestHandler(estimateRequestUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	addPingRoutes(router)

	v1 := router.Group("/v1", middleware.Authenticate(tokenManager))
	addEstimateRequestRoutes(v1, estimateRequestHandler)
	addUserRoutes(v1, userHandler)
	addNotificationRoutes(v1, notificationHandler)

	return func() {
		if err := chatPublisher.Close(); err != nil {
			logger.Warn("closing chat publisher", "error", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}, nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic", "panic", recovered, "path", c.FullPath())
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
