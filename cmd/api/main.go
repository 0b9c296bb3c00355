package main

import (
	_ "estimate_request_service/docs"
	"estimate_request_service/internal/adapter/http/routes"
	"estimate_request_service/internal/config"
	"estimate_request_service/internal/logger"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Estimate Request Service API
// @version         1.0
// @description     Client estimate requests, staff review and multi-channel notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(cfg); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
