package recipe

import (
	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/middleware"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/recipes")
	{
		group.GET("", GetRecipes)
		group.GET("/featured", GetFeaturedRecipes)
		group.GET("/:id", GetRecipe)

		authorized := group.Group("")
		authorized.Use(middleware.AuthMiddleware())
		{
			authorized.POST("", CreateRecipe)
			authorized.PATCH("/:id", UpdateRecipe)
			authorized.DELETE("/:id", DeleteRecipe)
		}
	}
}
