package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/users")
	{
		group.GET("", GetUsers)
		group.PATCH("/:id/enabled", SetUserEnabled)
	}
}
