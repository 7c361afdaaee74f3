package recipe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
	"github.com/SKHU-AQ-Project/aq-backend/internal/utils"
)

// CreateRecipe godoc
// @Summary Share a prompt recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param input body CreateRecipeInput true "Recipe fields"
// @Success 201 {object} utils.Response{data=models.Recipe}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Router /recipes [post]
func CreateRecipe(c *gin.Context) {
	var input CreateRecipeInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	r := models.Recipe{
		Title:             input.Title,
		Description:       input.Description,
		PromptTemplate:    input.PromptTemplate,
		UsageInstructions: input.UsageInstructions,
		ExampleInput:      input.ExampleInput,
		ExampleOutput:     input.ExampleOutput,
		Category:          models.RecipeCategory(input.Category),
		Tags:              input.Tags,
		ModelParameters:   input.ModelParameters,
	}

	created, err := services.CreateRecipe(u.ID, &r)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRecipeCategory) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create recipe"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Recipe created successfully", created))
}

// GetRecipes godoc
// @Summary List prompt recipes
// @Tags recipes
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param category query string false "Filter by category"
// @Param keyword query string false "Search in title and description"
// @Success 200 {object} utils.Response{data=RecipeListResponse}
// @Failure 400 {object} utils.Response
// @Router /recipes [get]
func GetRecipes(c *gin.Context) {
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

	category := models.RecipeCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid category"))
		return
	}

	recipes, total, err := services.FindRecipes(services.RecipeFilter{
		Category: category,
		Keyword:  c.Query("keyword"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recipes"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", RecipeListResponse{
		Recipes: recipes,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}))
}

// GetFeaturedRecipes godoc
// @Summary List the most-liked recipes
// @Tags recipes
// @Produce json
// @Param limit query int false "Number of recipes" default(10)
// @Success 200 {object} utils.Response{data=[]models.Recipe}
// @Failure 400 {object} utils.Response
// @Router /recipes/featured [get]
func GetFeaturedRecipes(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	recipes, err := services.FindFeaturedRecipes(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recipes"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", recipes))
}

// GetRecipe godoc
// @Summary Get one recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} utils.Response{data=models.Recipe}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /recipes/{id} [get]
func GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid recipe ID"))
		return
	}

	r, err := services.GetRecipe(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch recipe"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", r))
}

// UpdateRecipe godoc
// @Summary Update the current user's recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Recipe ID"
// @Param input body UpdateRecipeInput true "Fields to change"
// @Success 200 {object} utils.Response{data=models.Recipe}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /recipes/{id} [patch]
func UpdateRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid recipe ID"))
		return
	}

	var input UpdateRecipeInput
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
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PromptTemplate != nil {
		updates["prompt_template"] = *input.PromptTemplate
	}
	if input.UsageInstructions != nil {
		updates["usage_instructions"] = *input.UsageInstructions
	}
	if input.ExampleInput != nil {
		updates["example_input"] = *input.ExampleInput
	}
	if input.ExampleOutput != nil {
		updates["example_output"] = *input.ExampleOutput
	}
	if input.Category != nil {
		updates["category"] = models.RecipeCategory(*input.Category)
	}
	if input.Tags != nil {
		updates["tags"] = models.StringList(input.Tags)
	}
	if input.ModelParameters != nil {
		updates["model_parameters"] = input.ModelParameters
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "No fields to update"))
		return
	}

	updated, err := services.UpdateRecipe(uint(id), u.ID, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You can only edit your own recipes"))
		case errors.Is(err, services.ErrInvalidRecipeCategory):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update recipe"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Recipe updated successfully", updated))
}

// DeleteRecipe godoc
// @Summary Delete the current user's recipe
// @Tags recipes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 403 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /recipes/{id} [delete]
func DeleteRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid recipe ID"))
		return
	}

	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "User not authenticated"))
		return
	}
	u := userVal.(models.User)

	if err := services.DeleteRecipe(uint(id), u.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, utils.NewErrorResponse(http.StatusForbidden, "You can only delete your own recipes"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete recipe"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Recipe deleted successfully", nil))
}
