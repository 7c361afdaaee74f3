package models

import (
	"time"

	"gorm.io/datatypes"
)

type RecipeCategory string

const (
	RecipeCategoryWriting      RecipeCategory = "WRITING"
	RecipeCategoryCoding       RecipeCategory = "CODING"
	RecipeCategoryProductivity RecipeCategory = "PRODUCTIVITY"
	RecipeCategoryLearning     RecipeCategory = "LEARNING"
	RecipeCategoryCreative     RecipeCategory = "CREATIVE"
	RecipeCategoryAnalysis     RecipeCategory = "ANALYSIS"
)

func (c RecipeCategory) Valid() bool {
	switch c {
	case RecipeCategoryWriting, RecipeCategoryCoding, RecipeCategoryProductivity,
		RecipeCategoryLearning, RecipeCategoryCreative, RecipeCategoryAnalysis:
		return true
	}
	return false
}

// Recipe is a shared prompt template. ModelParameters carries suggested
// sampling settings (temperature, top_p, ...) as free-form JSON.
type Recipe struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	AuthorID          uint           `gorm:"not null;index" json:"author_id"`
	Title             string         `gorm:"size:200;not null" json:"title"`
	Description       string         `gorm:"type:text;not null" json:"description"`
	PromptTemplate    string         `gorm:"type:text;not null" json:"prompt_template"`
	UsageInstructions string         `gorm:"type:text" json:"usage_instructions"`
	ExampleInput      string         `gorm:"type:text" json:"example_input"`
	ExampleOutput     string         `gorm:"type:text" json:"example_output"`
	Category          RecipeCategory `gorm:"size:30;not null" json:"category"`
	Tags              StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	ModelParameters   datatypes.JSON `json:"model_parameters,omitempty"`
	ViewCount         int            `gorm:"not null;default:0" json:"view_count"`
	LikeCount         int            `gorm:"not null;default:0" json:"like_count"`
	BookmarkCount     int            `gorm:"not null;default:0" json:"bookmark_count"`
	Active            bool           `gorm:"not null;default:true" json:"active"`
}
