// @title Mini E-Learning Platform API
// @version 1.0
// @description Backend server for the mini e-learning platform: accounts, course catalog, enrollments and progress tracking.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"elearn_backend/internal/app"
	"elearn_backend/internal/config"
	"elearn_backend/pkg/logger"
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
