package proposal

import (
	"time"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

type CreateProposalInput struct {
	Name                string               `json:"name" binding:"required,max=100"`
	Provider            string               `json:"provider" binding:"required,max=50"`
	Description         string               `json:"description" binding:"max=1000"`
	Category            models.ModelCategory `json:"category" binding:"required,oneof=TEXT_GENERATION CODE_GENERATION TRANSLATION SUMMARIZATION QUESTION_ANSWERING CREATIVE_WRITING ANALYSIS MULTIMODAL"`
	Capabilities        []string             `json:"capabilities"`
	InputPricePerToken  float64              `json:"input_price_per_token" binding:"gte=0"`
	OutputPricePerToken float64              `json:"output_price_per_token" binding:"gte=0"`
	MaxTokens           int                  `json:"max_tokens" binding:"gte=0"`
	HasFreeTier         bool                 `json:"has_free_tier"`
	APIEndpoint         string               `json:"api_endpoint" binding:"omitempty,url"`
	DocumentationURL    string               `json:"documentation_url" binding:"omitempty,url"`
}

type ProposalResponse struct {
	ID              uint                  `json:"id"`
	UserID          uint                  `json:"user_id"`
	Name            string                `json:"name"`
	Provider        string                `json:"provider"`
	Description     string                `json:"description"`
	Category        models.ModelCategory  `json:"category"`
	Capabilities    []string              `json:"capabilities"`
	Status          models.ProposalStatus `json:"status"`
	LikeCount       int                   `json:"like_count"`
	IsLiked         *bool                 `json:"is_liked,omitempty"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
	ModelID         *uint                 `json:"model_id,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
}
