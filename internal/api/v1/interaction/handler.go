package interaction

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// ToggleLike godoc
// @Summary Toggle a like
// @Description Like the target if not yet liked, unlike it otherwise. Returns the resulting state and counter.
// @Tags interactions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ToggleLikeInput true "Toggle target"
// @Success 200 {object} utils.Response{data=ToggleResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /interactions/likes/toggle [post]
func ToggleLike(c *gin.Context) {
	var input ToggleLikeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	liked, count, err := services.ToggleLike(u.ID, input.TargetID, models.LikeTargetType(input.TargetType))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTargetType):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to toggle like"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ToggleResponse{
		Active: liked,
		Count:  count,
	}))
}

// ToggleBookmark godoc
// @Summary Toggle a bookmark
// @Description Bookmark the target if not yet bookmarked, remove the bookmark otherwise.
// @Tags interactions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body ToggleBookmarkInput true "Toggle target"
// @Success 200 {object} utils.Response{data=ToggleResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /interactions/bookmarks/toggle [post]
func ToggleBookmark(c *gin.Context) {
	var input ToggleBookmarkInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	bookmarked, count, err := services.ToggleBookmark(u.ID, input.TargetID, models.BookmarkTargetType(input.TargetType))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTargetType):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrTargetNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to toggle bookmark"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ToggleResponse{
		Active: bookmarked,
		Count:  count,
	}))
}

// GetLikeStatus godoc
// @Summary Check whether the current user liked a target
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, COMMENT, PROPOSAL)
// @Param id path int true "Target ID"
// @Success 200 {object} utils.Response{data=StatusResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /interactions/likes/{type}/{id}/status [get]
func GetLikeStatus(c *gin.Context) {
	targetType := models.LikeTargetType(c.Param("type"))
	if _, ok := targetType.Target(); !ok {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target type"))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	liked, err := services.IsLiked(u.ID, uint(id), targetType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch like status"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", StatusResponse{Liked: liked}))
}

// GetBookmarkStatus godoc
// @Summary Check whether the current user bookmarked a target
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, MODEL)
// @Param id path int true "Target ID"
// @Success 200 {object} utils.Response{data=StatusResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /interactions/bookmarks/{type}/{id}/status [get]
func GetBookmarkStatus(c *gin.Context) {
	targetType := models.BookmarkTargetType(c.Param("type"))
	if _, ok := targetType.Target(); !ok {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target type"))
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	bookmarked, err := services.IsBookmarked(u.ID, uint(id), targetType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bookmark status"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", StatusResponse{Bookmarked: bookmarked}))
}

// GetMyLikes godoc
// @Summary List targets of one kind liked by the current user
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, COMMENT, PROPOSAL)
// @Success 200 {object} utils.Response{data=TargetIDsResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /interactions/likes/{type} [get]
func GetMyLikes(c *gin.Context) {
	targetType := models.LikeTargetType(c.Param("type"))
	if _, ok := targetType.Target(); !ok {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target type"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	ids, err := services.GetLikedTargetIDs(u.ID, targetType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch likes"))
		return
	}
	if ids == nil {
		ids = []uint{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TargetIDsResponse{
		TargetIDs: ids,
		Total:     len(ids),
	}))
}

// GetMyBookmarks godoc
// @Summary List targets of one kind bookmarked by the current user
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param type path string true "Target type" Enums(REVIEW, RECIPE, MODEL)
// @Success 200 {object} utils.Response{data=TargetIDsResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /interactions/bookmarks/{type} [get]
func GetMyBookmarks(c *gin.Context) {
	targetType := models.BookmarkTargetType(c.Param("type"))
	if _, ok := targetType.Target(); !ok {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid target type"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	ids, err := services.GetBookmarkedTargetIDs(u.ID, targetType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch bookmarks"))
		return
	}
	if ids == nil {
		ids = []uint{}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", TargetIDsResponse{
		TargetIDs: ids,
		Total:     len(ids),
	}))
}
