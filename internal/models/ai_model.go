package models

import "time"

type ModelCategory string

const (
	CategoryTextGeneration    ModelCategory = "TEXT_GENERATION"
	CategoryCodeGeneration    ModelCategory = "CODE_GENERATION"
	CategoryTranslation       ModelCategory = "TRANSLATION"
	CategorySummarization     ModelCategory = "SUMMARIZATION"
	CategoryQuestionAnswering ModelCategory = "QUESTION_ANSWERING"
	CategoryCreativeWriting   ModelCategory = "CREATIVE_WRITING"
	CategoryAnalysis          ModelCategory = "ANALYSIS"
	CategoryMultimodal        ModelCategory = "MULTIMODAL"
)

func (c ModelCategory) Valid() bool {
	switch c {
	case CategoryTextGeneration, CategoryCodeGeneration, CategoryTranslation,
		CategorySummarization, CategoryQuestionAnswering, CategoryCreativeWriting,
		CategoryAnalysis, CategoryMultimodal:
		return true
	}
	return false
}

// AIModel is a canonical catalog entry. Created either by an admin directly
// or by approving a crowd proposal. ReviewCount and AverageRating are owned
// by the review lifecycle, BookmarkCount by the toggle engine.
type AIModel struct {
	ID                 uint          `gorm:"primarykey" json:"id"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	Name               string        `gorm:"size:100;not null;index" json:"name"`
	Provider           string        `gorm:"size:50;not null;index" json:"provider"`
	Description        string        `gorm:"size:1000" json:"description"`
	Category           ModelCategory `gorm:"size:30;not null" json:"category"`
	Capabilities       StringList    `gorm:"type:jsonb;not null;default:'[]'" json:"capabilities"`
	InputPricePerToken float64       `json:"input_price_per_token"`
	OutputPricePerToken float64      `json:"output_price_per_token"`
	MaxTokens          int           `json:"max_tokens"`
	HasFreeTier        bool          `gorm:"not null;default:false" json:"has_free_tier"`
	APIEndpoint        string        `json:"api_endpoint"`
	DocumentationURL   string        `json:"documentation_url"`
	AverageRating      float64       `json:"average_rating"`
	ReviewCount        int           `gorm:"not null;default:0" json:"review_count"`
	BookmarkCount      int           `gorm:"not null;default:0" json:"bookmark_count"`
	Active             bool          `gorm:"not null;default:true" json:"active"`
}
