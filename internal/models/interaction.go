package models

import "time"

// LikeTargetType identifies which kind of entity a like points at.
type LikeTargetType string

const (
	LikeTargetReview   LikeTargetType = "REVIEW"
	LikeTargetRecipe   LikeTargetType = "RECIPE"
	LikeTargetComment  LikeTargetType = "COMMENT"
	LikeTargetProposal LikeTargetType = "PROPOSAL"
)

// BookmarkTargetType identifies which kind of entity a bookmark points at.
type BookmarkTargetType string

const (
	BookmarkTargetReview BookmarkTargetType = "REVIEW"
	BookmarkTargetRecipe BookmarkTargetType = "RECIPE"
	BookmarkTargetModel  BookmarkTargetType = "MODEL"
)

// Like is one membership row of the like ledger. The composite unique index
// is the serialization point for concurrent toggles: a user can hold at most
// one like per (target_id, target_type). Rows are physically deleted on
// toggle-off.
type Like struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `gorm:"not null;index;uniqueIndex:idx_like_user_target" json:"user_id"`
	TargetID   uint           `gorm:"not null;uniqueIndex:idx_like_user_target" json:"target_id"`
	TargetType LikeTargetType `gorm:"size:20;not null;uniqueIndex:idx_like_user_target" json:"target_type"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Bookmark mirrors Like for the bookmark relation.
type Bookmark struct {
	ID         uint               `gorm:"primarykey" json:"id"`
	UserID     uint               `gorm:"not null;index;uniqueIndex:idx_bookmark_user_target" json:"user_id"`
	TargetID   uint               `gorm:"not null;uniqueIndex:idx_bookmark_user_target" json:"target_id"`
	TargetType BookmarkTargetType `gorm:"size:20;not null;uniqueIndex:idx_bookmark_user_target" json:"target_type"`
	CreatedAt  time.Time          `json:"created_at"`
}

// CounterTarget describes where the denormalized counter for one target kind
// lives. The toggle engine and the reconciler resolve a target kind to this
// once and never branch on entity internals.
type CounterTarget struct {
	Model  interface{}
	Table  string
	Column string
}

// Target resolves a like target kind to its counter location.
func (t LikeTargetType) Target() (CounterTarget, bool) {
	switch t {
	case LikeTargetReview:
		return CounterTarget{Model: &Review{}, Table: "reviews", Column: "like_count"}, true
	case LikeTargetRecipe:
		return CounterTarget{Model: &Recipe{}, Table: "recipes", Column: "like_count"}, true
	case LikeTargetComment:
		return CounterTarget{Model: &Comment{}, Table: "comments", Column: "like_count"}, true
	case LikeTargetProposal:
		return CounterTarget{Model: &ModelProposal{}, Table: "model_proposals", Column: "like_count"}, true
	}
	return CounterTarget{}, false
}

// Target resolves a bookmark target kind to its counter location.
func (t BookmarkTargetType) Target() (CounterTarget, bool) {
	switch t {
	case BookmarkTargetReview:
		return CounterTarget{Model: &Review{}, Table: "reviews", Column: "bookmark_count"}, true
	case BookmarkTargetRecipe:
		return CounterTarget{Model: &Recipe{}, Table: "recipes", Column: "bookmark_count"}, true
	case BookmarkTargetModel:
		return CounterTarget{Model: &AIModel{}, Table: "ai_models", Column: "bookmark_count"}, true
	}
	return CounterTarget{}, false
}
