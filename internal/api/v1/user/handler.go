package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// GetMe godoc
// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 401 {object} utils.Response
// @Router /users/me [get]
func GetMe(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", toUserResponse(u)))
}

// UpdateMe godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body UpdateProfileInput true "Profile fields"
// @Success 200 {object} utils.Response{data=UserResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /users/me [patch]
func UpdateMe(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	var input UpdateProfileInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	updates := map[string]interface{}{}
	if input.Nickname != nil {
		updates["nickname"] = *input.Nickname
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.ProfileImageURL != nil {
		updates["profile_image_url"] = *input.ProfileImageURL
	}
	if input.Password != nil {
		updates["password"] = *input.Password
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	updated, err := services.UpdateUser(u.ID, updates)
	if err != nil {
		if errors.Is(err, services.ErrOptimisticLock) {
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update profile"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Profile updated successfully", toUserResponse(*updated)))
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nickname:        u.Nickname,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		Role:            u.Role,
	}
}
