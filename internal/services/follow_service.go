package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// ToggleFollow flips the follow edge from userID to targetID and returns the
// resulting state. Like the other ledgers, the edge's unique index is the
// serialization point: a losing concurrent insert is retried once and lands
// as an unfollow.
func ToggleFollow(userID, targetID uint) (bool, error) {
	if userID == targetID {
		return false, ErrSelfFollow
	}

	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if _, err := FindUserByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	following, err := toggleFollowOnce(userID, targetID)
	if err != nil && isUniqueViolation(err) {
		following, err = toggleFollowOnce(userID, targetID)
	}
	if err != nil {
		return false, err
	}

	zap.L().Info("follow toggled",
		zap.Uint("follower_id", userID),
		zap.Uint("following_id", targetID),
		zap.Bool("following", following))

	return following, nil
}

func toggleFollowOnce(userID, targetID uint) (bool, error) {
	res := database.DB.Where("follower_id = ? AND following_id = ?", userID, targetID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	edge := models.Follow{FollowerID: userID, FollowingID: targetID}
	if err := database.DB.Create(&edge).Error; err != nil {
		return false, err
	}
	return true, nil
}

func IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// FollowStats aggregates one user's edge counts. IsFollowing is nil when the
// viewer is anonymous or looking at their own profile.
type FollowStats struct {
	UserID         uint  `json:"user_id"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
	IsFollowing    *bool `json:"is_following,omitempty"`
}

func GetFollowStats(userID, viewerID uint) (*FollowStats, error) {
	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	stats := FollowStats{UserID: userID}

	if err := database.DB.Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&stats.FollowerCount).Error; err != nil {
		return nil, err
	}
	if err := database.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&stats.FollowingCount).Error; err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != userID {
		following, err := IsFollowing(viewerID, userID)
		if err != nil {
			return nil, err
		}
		stats.IsFollowing = &following
	}

	return &stats, nil
}

// FindFollowers lists the users following userID, most recent edge first.
func FindFollowers(userID uint, page, limit int) ([]models.User, int64, error) {
	return findFollowEdgeUsers(userID, "follows.following_id", "follows.follower_id", page, limit)
}

// FindFollowing lists the users userID follows, most recent edge first.
func FindFollowing(userID uint, page, limit int) ([]models.User, int64, error) {
	return findFollowEdgeUsers(userID, "follows.follower_id", "follows.following_id", page, limit)
}

func findFollowEdgeUsers(userID uint, whereColumn, joinColumn string, page, limit int) ([]models.User, int64, error) {
	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	var total int64
	if err := database.DB.Model(&models.Follow{}).
		Where(whereColumn+" = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	offset := (page - 1) * limit
	err := database.DB.Model(&models.User{}).
		Joins("JOIN follows ON "+joinColumn+" = users.id").
		Where(whereColumn+" = ?", userID).
		Order("follows.created_at desc").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// GetFollowingIDs returns the IDs of every user userID follows.
func GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at desc").
		Pluck("following_id", &ids).Error
	return ids, err
}
