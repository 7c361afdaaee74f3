package models

import "time"

// Review is a user's writeup of one catalog model. LikeCount and
// BookmarkCount are written only by the toggle engine and the reconciler;
// deletion is a soft deactivate so the rating history survives.
type Review struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ModelID       uint       `gorm:"not null;index" json:"model_id"`
	AuthorID      uint       `gorm:"not null;index" json:"author_id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Rating        int        `gorm:"not null" json:"rating"`
	UseCase       string     `gorm:"size:100" json:"use_case"`
	InputExample  string     `gorm:"type:text" json:"input_example"`
	OutputExample string     `gorm:"type:text" json:"output_example"`
	Tags          StringList `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	ScreenshotURL string     `json:"screenshot_url"`
	ViewCount     int        `gorm:"not null;default:0" json:"view_count"`
	LikeCount     int        `gorm:"not null;default:0" json:"like_count"`
	BookmarkCount int        `gorm:"not null;default:0" json:"bookmark_count"`
	CommentCount  int        `gorm:"not null;default:0" json:"comment_count"`
	IsFeatured    bool       `gorm:"not null;default:false" json:"is_featured"`
	Active        bool       `gorm:"not null;default:true" json:"active"`
}
