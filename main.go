// @title Adaptive Learning Backend API
// @version 1.0
// @description Backend service for the adaptive e-learning platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"adaptive_edu_backend/internal/app"
	"adaptive_edu_backend/internal/config"
	"adaptive_edu_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
