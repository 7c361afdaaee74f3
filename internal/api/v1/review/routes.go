package review

import (
	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/reviews")
	{
		group.GET("", GetReviews)
		group.GET("/:id", GetReview)

		authorized := group.Group("")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.POST("", CreateReview)
			authorized.PATCH("/:id", UpdateReview)
			authorized.DELETE("/:id", DeleteReview)
		}
	}
}
