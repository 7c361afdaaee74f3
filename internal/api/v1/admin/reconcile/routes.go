package reconcile

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/reconcile")
	{
		group.POST("", ReconcileAll)
		group.POST("/likes/:type/:id", ReconcileLikeCount)
		group.POST("/bookmarks/:type/:id", ReconcileBookmarkCount)
	}
}
