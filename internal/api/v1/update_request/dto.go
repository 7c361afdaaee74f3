package update_request

import (
	"time"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

type CreateUpdateRequestInput struct {
	ModelID             uint                  `json:"model_id" binding:"required"`
	Name                *string               `json:"name" binding:"omitempty,max=100"`
	Description         *string               `json:"description" binding:"omitempty,max=1000"`
	Category            *models.ModelCategory `json:"category" binding:"omitempty,oneof=TEXT_GENERATION CODE_GENERATION TRANSLATION SUMMARIZATION QUESTION_ANSWERING CREATIVE_WRITING ANALYSIS MULTIMODAL"`
	Capabilities        []string              `json:"capabilities"`
	InputPricePerToken  *float64              `json:"input_price_per_token" binding:"omitempty,gte=0"`
	OutputPricePerToken *float64              `json:"output_price_per_token" binding:"omitempty,gte=0"`
	MaxTokens           *int                  `json:"max_tokens" binding:"omitempty,gte=0"`
	HasFreeTier         *bool                 `json:"has_free_tier"`
	APIEndpoint         *string               `json:"api_endpoint" binding:"omitempty,url"`
	DocumentationURL    *string               `json:"documentation_url" binding:"omitempty,url"`
	Reason              string                `json:"reason" binding:"required,max=500"`
}

type UpdateRequestResponse struct {
	ID          uint                       `json:"id"`
	UserID      uint                       `json:"user_id"`
	ModelID     uint                       `json:"model_id"`
	Reason      string                     `json:"reason"`
	Status      models.UpdateRequestStatus `json:"status"`
	ProcessedBy *uint                      `json:"processed_by,omitempty"`
	ProcessedAt *time.Time                 `json:"processed_at,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
}

type UpdateRequestListResponse struct {
	Requests []UpdateRequestResponse `json:"requests"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	Limit    int                     `json:"limit"`
}
