package recipe

import (
	"gorm.io/datatypes"
)

type CreateRecipeInput struct {
	Title             string         `json:"title" binding:"required,max=200"`
	Description       string         `json:"description" binding:"required"`
	PromptTemplate    string         `json:"prompt_template" binding:"required"`
	UsageInstructions string         `json:"usage_instructions"`
	ExampleInput      string         `json:"example_input"`
	ExampleOutput     string         `json:"example_output"`
	Category          string         `json:"category" binding:"required,oneof=WRITING CODING PRODUCTIVITY LEARNING CREATIVE ANALYSIS"`
	Tags              []string       `json:"tags"`
	ModelParameters   datatypes.JSON `json:"model_parameters"`
}

type UpdateRecipeInput struct {
	Title             *string        `json:"title" binding:"omitempty,max=200"`
	Description       *string        `json:"description"`
	PromptTemplate    *string        `json:"prompt_template"`
	UsageInstructions *string        `json:"usage_instructions"`
	ExampleInput      *string        `json:"example_input"`
	ExampleOutput     *string        `json:"example_output"`
	Category          *string        `json:"category" binding:"omitempty,oneof=WRITING CODING PRODUCTIVITY LEARNING CREATIVE ANALYSIS"`
	Tags              []string       `json:"tags"`
	ModelParameters   datatypes.JSON `json:"model_parameters"`
}

type RecipeListResponse struct {
	Recipes interface{} `json:"recipes"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}
