package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/container"
	"portfolio-backend/pkg/logger"
)

func main() {
	// .env là optional - production dùng env vars thật
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := container.NewContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	router := SetupRouter(app)

	logger.Info("Starting application", map[string]interface{}{
		"name": cfg.App.Name,
		"env":  cfg.App.Environment,
	})

	if err := Serve(router, cfg.App.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
