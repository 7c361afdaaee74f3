package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SKHU-AQ-Project/aq-backend/config"
	_ "github.com/SKHU-AQ-Project/aq-backend/docs"
	adminModel "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/admin/ai_model"
	adminProposal "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/admin/proposal"
	adminReconcile "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/admin/reconcile"
	adminUpdateRequest "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/admin/update_request"
	adminUser "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/admin/user"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/ai_model"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/auth"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/interaction"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/proposal"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/recipe"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/review"
	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/update_request"
	userRoutes "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/user"
	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)
		ai_model.RegisterRoutes(v1)
		proposal.RegisterRoutes(v1)
		review.RegisterRoutes(v1)
		recipe.RegisterRoutes(v1)
		update_request.RegisterRoutes(v1)
		userRoutes.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			interaction.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminModel.RegisterRoutes(admin)
			adminProposal.RegisterRoutes(admin)
			adminUpdateRequest.RegisterRoutes(admin)
			adminReconcile.RegisterRoutes(admin)
		}
	}

	return router, nil
}
