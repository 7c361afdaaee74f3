package proposal

import (
	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/proposals")
	{
		group.GET("", middleware.OptionalAuthMiddleware(), GetProposals)
		group.GET("/:id", middleware.OptionalAuthMiddleware(), GetProposal)

		authorized := group.Group("")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.POST("", CreateProposal)
			authorized.GET("/my", GetMyProposals)
			authorized.POST("/:id/like", LikeProposal)
		}
	}
}
