package interaction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/interactions")
	{
		group.POST("/likes/toggle", ToggleLike)
		group.POST("/bookmarks/toggle", ToggleBookmark)
		group.GET("/likes/:type", GetMyLikes)
		group.GET("/likes/:type/:id/status", GetLikeStatus)
		group.GET("/bookmarks/:type", GetMyBookmarks)
		group.GET("/bookmarks/:type/:id/status", GetBookmarkStatus)
	}
}
