package proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

type RejectInput struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ApproveProposal godoc
// @Summary Approve a pending proposal
// @Description Approve a PENDING proposal and create the catalog model from it. Fails with 409 if it was already processed, including by auto-approval.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Proposal ID"
// @Success 200 {object} utils.Response{data=models.ModelProposal}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/proposals/{id}/approve [post]
func ApproveProposal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	proposal, err := services.ApproveProposal(u.ID, uint(id), false)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProposalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Only admin can approve proposals"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to approve proposal"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Proposal approved successfully", proposal))
}

// RejectProposal godoc
// @Summary Reject a pending proposal
// @Description Reject a PENDING proposal with a reason. Its like count is frozen and no catalog model is created.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Proposal ID"
// @Param input body RejectInput true "Rejection reason"
// @Success 200 {object} utils.Response{data=models.ModelProposal}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/proposals/{id}/reject [post]
func RejectProposal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid proposal ID"))
		return
	}

	var input RejectInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	proposal, err := services.RejectProposal(u.ID, uint(id), input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProposalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Only admin can reject proposals"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reject proposal"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Proposal rejected successfully", proposal))
}

// GetPendingProposals godoc
// @Summary List pending proposals for review
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /admin/proposals/pending [get]
func GetPendingProposals(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	proposals, total, err := services.FindProposals(services.ProposalFilter{
		Status:       models.ProposalStatusPending,
		OrderByLikes: true,
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch proposals"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", gin.H{
		"proposals": proposals,
		"total":     total,
		"page":      page,
		"limit":     limit,
	}))
}
