package ai_model

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/models")
	{
		group.PATCH("/:id/active", SetModelActive)
	}
}
