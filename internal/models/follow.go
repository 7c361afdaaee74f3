package models

import "time"

// Follow is one directed edge of the social graph: follower follows
// following. The composite unique index keeps the relation binary; rows are
// physically deleted on unfollow. Counts are derived from the edges, there is
// no cached counter column.
type Follow struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	FollowerID  uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;index;uniqueIndex:idx_follow_pair" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
