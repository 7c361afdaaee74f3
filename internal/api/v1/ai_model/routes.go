package ai_model

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	modelGroup := router.Group("/models")
	{
		modelGroup.GET("", GetModels)
		modelGroup.GET("/:id", GetModel)
	}
}
