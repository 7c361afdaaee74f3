package main

import (
	"log"

	"github.com/SKHU-AQ-Project/aq-backend/config"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api"
	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/pkg/logger"
)

// @title aq-backend API
// @version 1.0
// @description Community catalog of AI models with reviews, prompt recipes and crowd-moderated proposals.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	services.SetAutoApproveThreshold(cfg.ProposalAutoApproveThreshold)

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.AIModel{},
		&models.ModelProposal{},
		&models.ModelUpdateRequest{},
		&models.Review{},
		&models.Recipe{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	go services.Sweeper.Start()
	defer services.Sweeper.Stop()

	if err := router.Run(":8080"); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
