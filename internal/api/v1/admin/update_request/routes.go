package update_request

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/update-requests")
	{
		group.GET("", GetUpdateRequests)
		group.POST("/:id/approve", ApproveUpdateRequest)
		group.POST("/:id/reject", RejectUpdateRequest)
	}
}
