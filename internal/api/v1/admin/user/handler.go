package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userDTO "github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/user"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

type SetEnabledInput struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// GetUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} utils.Response{data=user.UserListResponse}
// @Failure 400 {object} utils.Response
// @Router /admin/users [get]
func GetUsers(c *gin.Context) {
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

	users, total, err := services.FindUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch users"))
		return
	}

	items := make([]userDTO.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userDTO.UserResponse{
			ID:       u.ID,
			Email:    u.Email,
			Nickname: u.Nickname,
			Role:     u.Role,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", userDTO.UserListResponse{
		Users: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}

// SetUserEnabled godoc
// @Summary Enable or disable a user account
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "User ID"
// @Param input body SetEnabledInput true "Enabled flag"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /admin/users/{id}/enabled [patch]
func SetUserEnabled(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user ID"))
		return
	}

	var input SetEnabledInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updated, err := services.UpdateUser(uint(id), map[string]interface{}{
		"enabled": *input.Enabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrOptimisticLock):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update user"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("User updated successfully", userDTO.UserResponse{
		ID:       updated.ID,
		Email:    updated.Email,
		Nickname: updated.Nickname,
		Role:     updated.Role,
	}))
}
