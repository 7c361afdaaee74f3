package ai_model

import (
	"time"

	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

type AIModelListItem struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Provider      string               `json:"provider"`
	Description   string               `json:"description"`
	Category      models.ModelCategory `json:"category"`
	Capabilities  []string             `json:"capabilities"`
	HasFreeTier   bool                 `json:"has_free_tier"`
	AverageRating float64              `json:"average_rating"`
	ReviewCount   int                  `json:"review_count"`
	BookmarkCount int                  `json:"bookmark_count"`
	Active        bool                 `json:"active"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type AIModelListResponse struct {
	Models []AIModelListItem `json:"models"`
	Total  int64             `json:"total"`
	Page   int               `json:"page"`
	Limit  int               `json:"limit"`
}
