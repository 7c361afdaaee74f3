package models

import "time"

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "PENDING"
	ProposalStatusApproved ProposalStatus = "APPROVED"
	ProposalStatusRejected ProposalStatus = "REJECTED"
)

// SystemActorID stamps ApprovedBy when a proposal is approved by crossing
// the like threshold rather than by an administrator.
const SystemActorID uint = 0

// ModelProposal is a crowd-submitted candidate for the model catalog.
// Status only ever moves PENDING -> APPROVED or PENDING -> REJECTED; a
// processed proposal is kept forever as a historical record.
type ModelProposal struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	UserID              uint           `gorm:"not null;index" json:"user_id"`
	Name                string         `gorm:"size:100;not null;index" json:"name"`
	Provider            string         `gorm:"size:50;not null;index" json:"provider"`
	Description         string         `gorm:"size:1000" json:"description"`
	Category            ModelCategory  `gorm:"size:30;not null" json:"category"`
	Capabilities        StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"capabilities"`
	InputPricePerToken  float64        `json:"input_price_per_token"`
	OutputPricePerToken float64        `json:"output_price_per_token"`
	MaxTokens           int            `json:"max_tokens"`
	HasFreeTier         bool           `gorm:"not null;default:false" json:"has_free_tier"`
	APIEndpoint         string         `json:"api_endpoint"`
	DocumentationURL    string         `json:"documentation_url"`
	Status              ProposalStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	LikeCount           int            `gorm:"not null;default:0" json:"like_count"`
	RejectionReason     string         `gorm:"size:500" json:"rejection_reason,omitempty"`
	ApprovedBy          *uint          `json:"approved_by,omitempty"`
	ApprovedAt          *time.Time     `json:"approved_at,omitempty"`
	ModelID             *uint          `json:"model_id,omitempty"`
}

func (p *ModelProposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

// ToModel copies the proposed fields verbatim into a fresh catalog entry.
func (p *ModelProposal) ToModel() AIModel {
	return AIModel{
		Name:                p.Name,
		Provider:            p.Provider,
		Description:         p.Description,
		Category:            p.Category,
		Capabilities:        p.Capabilities,
		InputPricePerToken:  p.InputPricePerToken,
		OutputPricePerToken: p.OutputPricePerToken,
		MaxTokens:           p.MaxTokens,
		HasFreeTier:         p.HasFreeTier,
		APIEndpoint:         p.APIEndpoint,
		DocumentationURL:    p.DocumentationURL,
		Active:              true,
	}
}
