package update_request

import (
	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/update-requests")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("", CreateUpdateRequest)
		group.GET("/:id", GetUpdateRequest)
	}
}
