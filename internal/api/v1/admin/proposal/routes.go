package proposal

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/proposals")
	{
		group.GET("/pending", GetPendingProposals)
		group.POST("/:id/approve", ApproveProposal)
		group.POST("/:id/reject", RejectProposal)
	}
}
