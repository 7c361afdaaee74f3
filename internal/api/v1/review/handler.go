package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// CreateReview godoc
// @Summary Create a review for a catalog model
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateReviewInput true "Review fields"
// @Success 201 {object} utils.Response{data=models.Review}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /reviews [post]
func CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	r := models.Review{
		ModelID:       input.ModelID,
		Title:         input.Title,
		Content:       input.Content,
		Rating:        input.Rating,
		UseCase:       input.UseCase,
		InputExample:  input.InputExample,
		OutputExample: input.OutputExample,
		Tags:          input.Tags,
		ScreenshotURL: input.ScreenshotURL,
	}
	if r.Tags == nil {
		r.Tags = models.StringList{}
	}

	created, err := services.CreateReview(u.ID, &r)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrModelNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrModelInactive):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		case errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create review"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Review created successfully", created))
}

// GetReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param model_id query int false "Filter by model"
// @Param keyword query string false "Search in title and content"
// @Success 200 {object} utils.Response{data=ReviewListResponse}
// @Failure 400 {object} utils.Response
// @Router /reviews [get]
func GetReviews(c *gin.Context) {
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

	filter := services.ReviewFilter{
		Keyword: c.Query("keyword"),
		Page:    page,
		Limit:   limit,
	}
	if modelIDStr := c.Query("model_id"); modelIDStr != "" {
		modelID, err := strconv.Atoi(modelIDStr)
		if err != nil || modelID < 1 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid model ID"))
			return
		}
		filter.ModelID = uint(modelID)
	}

	reviews, total, err := services.FindReviews(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch reviews"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ReviewListResponse{
		Reviews: reviews,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}))
}

// GetReview godoc
// @Summary Get one review
// @Tags reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} utils.Response{data=models.Review}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /reviews/{id} [get]
func GetReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid review ID"))
		return
	}

	r, err := services.GetReview(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch review"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", r))
}

// UpdateReview godoc
// @Summary Update the current user's review
// @Tags reviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Review ID"
// @Param input body UpdateReviewInput true "Fields to change"
// @Success 200 {object} utils.Response{data=models.Review}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /reviews/{id} [patch]
func UpdateReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid review ID"))
		return
	}

	var input UpdateReviewInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.UseCase != nil {
		updates["use_case"] = *input.UseCase
	}
	if input.InputExample != nil {
		updates["input_example"] = *input.InputExample
	}
	if input.OutputExample != nil {
		updates["output_example"] = *input.OutputExample
	}
	if input.ScreenshotURL != nil {
		updates["screenshot_url"] = *input.ScreenshotURL
	}
	if input.Tags != nil {
		updates["tags"] = models.StringList(input.Tags)
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	updated, err := services.UpdateReview(uint(id), u.ID, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You can only edit your own reviews"))
		case errors.Is(err, services.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update review"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Review updated successfully", updated))
}

// DeleteReview godoc
// @Summary Delete the current user's review
// @Tags reviews
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Review ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /reviews/{id} [delete]
func DeleteReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid review ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	if err := services.DeleteReview(uint(id), u.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You can only delete your own reviews"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete review"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Review deleted successfully", nil))
}
