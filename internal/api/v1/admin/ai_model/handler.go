package ai_model

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

type SetActiveInput struct {
	Active *bool `json:"active" binding:"required"`
}

// SetModelActive godoc
// @Summary Activate or deactivate a catalog model
// @Description Deactivated models disappear from public listings and stop accepting reviews and update requests.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Model ID"
// @Param input body SetActiveInput true "Active flag"
// @Success 200 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/models/{id}/active [patch]
func SetModelActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid model ID"))
		return
	}

	var input SetActiveInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	model, err := services.SetModelActive(u.ID, uint(id), *input.Active)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrModelNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "Only admin can change model status"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update model"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model updated successfully", model))
}
