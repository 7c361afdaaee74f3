package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// ToggleFollow godoc
// @Summary Follow or unfollow a user
// @Description Follow the target user if not yet following, unfollow otherwise. Returns the resulting state and the target's edge counts.
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.Response{data=FollowToggleResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /users/{id}/follow [post]
func ToggleFollow(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	following, err := services.ToggleFollow(u.ID, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfFollow):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to toggle follow"))
		}
		return
	}

	stats, err := services.GetFollowStats(uint(id), u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch follow stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FollowToggleResponse{
		Following:      following,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
	}))
}

// GetFollowers godoc
// @Summary List a user's followers
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.Response{data=FollowListResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /users/{id}/followers [get]
func GetFollowers(c *gin.Context) {
	listFollowEdges(c, services.FindFollowers)
}

// GetFollowing godoc
// @Summary List the users a user follows
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.Response{data=FollowListResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /users/{id}/following [get]
func GetFollowing(c *gin.Context) {
	listFollowEdges(c, services.FindFollowing)
}

func listFollowEdges(c *gin.Context, find func(uint, int, int) ([]models.User, int64, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	users, total, err := find(uint(id), page, limit)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FollowListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// GetFollowStats godoc
// @Summary Get a user's follower and following counts
// @Description Edge counts for the user. When the caller is authenticated and not looking at themselves, is_following says whether they follow this user.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.Response{data=FollowStatsResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /users/{id}/follow-stats [get]
func GetFollowStats(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var viewerID uint
	if userVal, exists := c.Get("user"); exists {
		viewerID = userVal.(models.User).ID
	}

	stats, err := services.GetFollowStats(uint(id), viewerID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch follow stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", FollowStatsResponse{
		UserID:         stats.UserID,
		FollowerCount:  stats.FollowerCount,
		FollowingCount: stats.FollowingCount,
		IsFollowing:    stats.IsFollowing,
	}))
}
