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

// GetModels godoc
// @Summary Get list of AI models
// @Description Retrieve a paginated list of active catalog models with filtering
// @Tags models
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param keyword query string false "Search by name, provider or description"
// @Param category query string false "Filter by category"
// @Success 200 {object} utils.Response{data=AIModelListResponse}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /models [get]
func GetModels(c *gin.Context) {
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

	category := models.ModelCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category"))
		return
	}

	filter := services.AIModelFilter{
		Keyword:    c.Query("keyword"),
		Category:   category,
		OnlyActive: true,
		Page:       page,
		Limit:      limit,
	}

	modelsList, total, err := services.FindAIModels(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch models"))
		return
	}

	responseItems := make([]AIModelListItem, 0, len(modelsList))
	for i := range modelsList {
		responseItems = append(responseItems, toListItem(&modelsList[i]))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", AIModelListResponse{
		Models: responseItems,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}))
}

// GetModel godoc
// @Summary Get one AI model
// @Tags models
// @Produce json
// @Param id path int true "Model ID"
// @Success 200 {object} utils.Response{data=models.AIModel}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [get]
func GetModel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid model ID"))
		return
	}

	model, err := services.GetAIModelByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch model"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", model))
}

func toListItem(m *models.AIModel) AIModelListItem {
	return AIModelListItem{
		ID:            m.ID,
		Name:          m.Name,
		Provider:      m.Provider,
		Description:   m.Description,
		Category:      m.Category,
		Capabilities:  m.Capabilities,
		HasFreeTier:   m.HasFreeTier,
		AverageRating: m.AverageRating,
		ReviewCount:   m.ReviewCount,
		BookmarkCount: m.BookmarkCount,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
