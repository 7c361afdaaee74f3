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

// CreateUpdateRequest godoc
// @Summary Propose an edit to a catalog model
// @Description Queue a partial update against an existing model. Only the supplied fields are applied on approval.
// @Tags update-requests
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateUpdateRequestInput true "Proposed changes"
// @Success 201 {object} utils.Response{data=UpdateRequestResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /update-requests [post]
func CreateUpdateRequest(c *gin.Context) {
	var input CreateUpdateRequestInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	request := models.ModelUpdateRequest{
		ModelID:             input.ModelID,
		Name:                input.Name,
		Description:         input.Description,
		Category:            input.Category,
		Capabilities:        input.Capabilities,
		InputPricePerToken:  input.InputPricePerToken,
		OutputPricePerToken: input.OutputPricePerToken,
		MaxTokens:           input.MaxTokens,
		HasFreeTier:         input.HasFreeTier,
		APIEndpoint:         input.APIEndpoint,
		DocumentationURL:    input.DocumentationURL,
		Reason:              input.Reason,
	}

	created, err := services.CreateUpdateRequest(u.ID, &request)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrModelNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrModelInactive):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create update request"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Update request created successfully", toUpdateRequestResponse(created)))
}

// GetUpdateRequest godoc
// @Summary Get one update request
// @Tags update-requests
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Update request ID"
// @Success 200 {object} utils.Response{data=UpdateRequestResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /update-requests/{id} [get]
func GetUpdateRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid update request ID"))
		return
	}

	request, err := services.GetUpdateRequestByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUpdateRequestNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch update request"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", toUpdateRequestResponse(request)))
}

func toUpdateRequestResponse(r *models.ModelUpdateRequest) UpdateRequestResponse {
	return UpdateRequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ModelID:     r.ModelID,
		Reason:      r.Reason,
		Status:      r.Status,
		ProcessedBy: r.ProcessedBy,
		ProcessedAt: r.ProcessedAt,
		CreatedAt:   r.CreatedAt,
	}
}
