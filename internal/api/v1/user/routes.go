package user

import (
	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("/:id/followers", GetFollowers)
		userGroup.GET("/:id/following", GetFollowing)
		userGroup.GET("/:id/follow-stats", middleware.OptionalAuthMiddleware(), GetFollowStats)

		authorized := userGroup.Group("")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.GET("/me", GetMe)
			authorized.PATCH("/me", UpdateMe)
			authorized.POST("/:id/follow", ToggleFollow)
		}
	}
}
