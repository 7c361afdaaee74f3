package update_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// GetUpdateRequests godoc
// @Summary List update requests for review
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Filter by status" Enums(PENDING, APPROVED, REJECTED)
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /admin/update-requests [get]
func GetUpdateRequests(c *gin.Context) {
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

	status := models.UpdateRequestStatus(c.DefaultQuery("status", string(models.UpdateRequestStatusPending)))

	requests, total, err := services.FindUpdateRequests(status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch update requests"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", gin.H{
		"requests": requests,
		"total":    total,
		"page":     page,
		"limit":    limit,
	}))
}

// ApproveUpdateRequest godoc
// @Summary Approve an update request
// @Description Approve a PENDING update request and patch the supplied fields onto the model. Fails with 409 if it was already processed.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Update request ID"
// @Success 200 {object} utils.Response{data=models.ModelUpdateRequest}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/update-requests/{id}/approve [post]
func ApproveUpdateRequest(c *gin.Context) {
	processUpdateRequest(c, true)
}

// RejectUpdateRequest godoc
// @Summary Reject an update request
// @Description Reject a PENDING update request, leaving the model untouched.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Update request ID"
// @Success 200 {object} utils.Response{data=models.ModelUpdateRequest}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/update-requests/{id}/reject [post]
func RejectUpdateRequest(c *gin.Context) {
	processUpdateRequest(c, false)
}

func processUpdateRequest(c *gin.Context, approve bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid update request ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	request, err := services.ProcessUpdateRequest(u.ID, uint(id), approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUpdateRequestNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Only admin can process update requests"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process update request"))
		}
		return
	}

	message := "Update request rejected successfully"
	if approve {
		message = "Update request approved successfully"
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse(message, request))
}
