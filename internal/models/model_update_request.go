package models

import "time"

type UpdateRequestStatus string

const (
	UpdateRequestStatusPending  UpdateRequestStatus = "PENDING"
	UpdateRequestStatusApproved UpdateRequestStatus = "APPROVED"
	UpdateRequestStatusRejected UpdateRequestStatus = "REJECTED"
)

// ModelUpdateRequest is a proposed edit to an existing catalog model. Diff
// fields are pointers: nil means "leave the model's value alone", so an
// approval only patches what the submitter actually supplied.
type ModelUpdateRequest struct {
	ID                  uint                `gorm:"primarykey" json:"id"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	UserID              uint                `gorm:"not null;index" json:"user_id"`
	ModelID             uint                `gorm:"not null;index" json:"model_id"`
	Name                *string             `gorm:"size:100" json:"name,omitempty"`
	Description         *string             `gorm:"size:1000" json:"description,omitempty"`
	Category            *ModelCategory      `gorm:"size:30" json:"category,omitempty"`
	// Capabilities is stored as a JSON array; an empty list reads back as
	// "not supplied" since the column type cannot hold a nil marker.
	Capabilities        StringList          `gorm:"type:jsonb" json:"capabilities,omitempty"`
	InputPricePerToken  *float64            `json:"input_price_per_token,omitempty"`
	OutputPricePerToken *float64            `json:"output_price_per_token,omitempty"`
	MaxTokens           *int                `json:"max_tokens,omitempty"`
	HasFreeTier         *bool               `json:"has_free_tier,omitempty"`
	APIEndpoint         *string             `json:"api_endpoint,omitempty"`
	DocumentationURL    *string             `json:"documentation_url,omitempty"`
	Reason              string              `gorm:"size:500;not null" json:"reason"`
	Status              UpdateRequestStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	ProcessedBy         *uint               `json:"processed_by,omitempty"`
	ProcessedAt         *time.Time          `json:"processed_at,omitempty"`
}

func (r *ModelUpdateRequest) IsPending() bool {
	return r.Status == UpdateRequestStatusPending
}
