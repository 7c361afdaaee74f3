package reconcile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// ReconcileAll godoc
// @Summary Recompute every cached counter from the ledger
// @Description Sweeps all like, bookmark and review counters and overwrites any that drifted. Returns the number of corrected counters.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/reconcile [post]
func ReconcileAll(c *gin.Context) {
	corrected, err := services.ReconcileAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Reconcile sweep failed"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Reconcile completed", gin.H{
		"corrected": corrected,
	}))
}

// ReconcileLikeCount godoc
// @Summary Recompute one like counter
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, COMMENT, PROPOSAL)
// @Param id path int true "Target ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/reconcile/likes/{type}/{id} [post]
func ReconcileLikeCount(c *gin.Context) {
	targetType := models.LikeTargetType(c.Param("type"))
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target ID"))
		return
	}

	count, correctedFlag, err := services.ReconcileLikeCount(uint(id), targetType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTargetType):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Reconcile failed"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Reconcile completed", gin.H{
		"count":     count,
		"corrected": correctedFlag,
	}))
}

// ReconcileBookmarkCount godoc
// @Summary Recompute one bookmark counter
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, MODEL)
// @Param id path int true "Target ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /admin/reconcile/bookmarks/{type}/{id} [post]
func ReconcileBookmarkCount(c *gin.Context) {
	targetType := models.BookmarkTargetType(c.Param("type"))
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target ID"))
		return
	}

	count, correctedFlag, err := services.ReconcileBookmarkCount(uint(id), targetType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTargetType):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Reconcile failed"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Reconcile completed", gin.H{
		"count":     count,
		"corrected": correctedFlag,
	}))
}
