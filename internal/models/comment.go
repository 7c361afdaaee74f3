package models

import "time"

// Comment hangs off a review and is itself a like target.
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Content   string    `gorm:"size:1000;not null" json:"content"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
}
