package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrInvalidTargetType = errors.New("invalid target type")
var ErrTargetNotFound = errors.New("target not found")

// ToggleLike flips the like ledger row for (userID, targetID, targetType) and
// the target's like counter in a single transaction. It returns the resulting
// membership state and the counter value read after the mutation.
//
// Two concurrent toggles by the same user race on the ledger's unique index;
// the loser of an insert race is retried once and lands as a toggle-off.
func ToggleLike(userID, targetID uint, targetType models.LikeTargetType) (bool, int64, error) {
	target, ok := targetType.Target()
	if !ok {
		return false, 0, ErrInvalidTargetType
	}

	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrUserNotFound
		}
		return false, 0, err
	}

	liked, count, err := toggleLikeOnce(userID, targetID, targetType, target)
	if err != nil && isUniqueViolation(err) {
		liked, count, err = toggleLikeOnce(userID, targetID, targetType, target)
	}
	if err != nil {
		return false, 0, err
	}

	// A like on a proposal may push it over the auto-approval threshold.
	// Failures here never surface to the caller: the toggle has committed,
	// and a later toggle or the reconcile sweep will retry the check.
	if targetType == models.LikeTargetProposal {
		if err := TryAutoApprove(targetID, count); err != nil {
			zap.L().Error("proposal auto-approve check failed",
				zap.Uint("proposal_id", targetID),
				zap.Error(err))
		}
	}

	return liked, count, nil
}

func toggleLikeOnce(userID, targetID uint, targetType models.LikeTargetType, target models.CounterTarget) (bool, int64, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := requireTarget(tx, target, targetID); err != nil {
		tx.Rollback()
		return false, 0, err
	}

	liked := false
	res := tx.Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Delete(&models.Like{})
	if res.Error != nil {
		tx.Rollback()
		return false, 0, res.Error
	}

	if res.RowsAffected > 0 {
		if err := decrementCounter(tx, target, targetID); err != nil {
			tx.Rollback()
			return false, 0, err
		}
	} else {
		entry := models.Like{UserID: userID, TargetID: targetID, TargetType: targetType}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return false, 0, err
		}
		if err := incrementCounter(tx, target, targetID); err != nil {
			tx.Rollback()
			return false, 0, err
		}
		liked = true
	}

	count, err := readCounter(tx, target, targetID)
	if err != nil {
		tx.Rollback()
		return false, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// ToggleBookmark is the bookmark twin of ToggleLike. Bookmarks have no
// moderation side effects.
func ToggleBookmark(userID, targetID uint, targetType models.BookmarkTargetType) (bool, int64, error) {
	target, ok := targetType.Target()
	if !ok {
		return false, 0, ErrInvalidTargetType
	}

	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrUserNotFound
		}
		return false, 0, err
	}

	bookmarked, count, err := toggleBookmarkOnce(userID, targetID, targetType, target)
	if err != nil && isUniqueViolation(err) {
		bookmarked, count, err = toggleBookmarkOnce(userID, targetID, targetType, target)
	}
	return bookmarked, count, err
}

func toggleBookmarkOnce(userID, targetID uint, targetType models.BookmarkTargetType, target models.CounterTarget) (bool, int64, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := requireTarget(tx, target, targetID); err != nil {
		tx.Rollback()
		return false, 0, err
	}

	bookmarked := false
	res := tx.Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		tx.Rollback()
		return false, 0, res.Error
	}

	if res.RowsAffected > 0 {
		if err := decrementCounter(tx, target, targetID); err != nil {
			tx.Rollback()
			return false, 0, err
		}
	} else {
		entry := models.Bookmark{UserID: userID, TargetID: targetID, TargetType: targetType}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			return false, 0, err
		}
		if err := incrementCounter(tx, target, targetID); err != nil {
			tx.Rollback()
			return false, 0, err
		}
		bookmarked = true
	}

	count, err := readCounter(tx, target, targetID)
	if err != nil {
		tx.Rollback()
		return false, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		return false, 0, err
	}

	return bookmarked, count, nil
}

func IsLiked(userID, targetID uint, targetType models.LikeTargetType) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Like{}).
		Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Count(&count).Error
	return count > 0, err
}

func IsBookmarked(userID, targetID uint, targetType models.BookmarkTargetType) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND target_id = ? AND target_type = ?", userID, targetID, targetType).
		Count(&count).Error
	return count > 0, err
}

func GetLikedTargetIDs(userID uint, targetType models.LikeTargetType) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&models.Like{}).
		Where("user_id = ? AND target_type = ?", userID, targetType).
		Order("created_at desc").
		Pluck("target_id", &ids).Error
	return ids, err
}

func GetBookmarkedTargetIDs(userID uint, targetType models.BookmarkTargetType) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&models.Bookmark{}).
		Where("user_id = ? AND target_type = ?", userID, targetType).
		Order("created_at desc").
		Pluck("target_id", &ids).Error
	return ids, err
}

// GetLikeCount counts ledger rows directly, bypassing the cached counter.
func GetLikeCount(targetID uint, targetType models.LikeTargetType) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Like{}).
		Where("target_id = ? AND target_type = ?", targetID, targetType).
		Count(&count).Error
	return count, err
}

// GetBookmarkCount counts ledger rows directly, bypassing the cached counter.
func GetBookmarkCount(targetID uint, targetType models.BookmarkTargetType) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Bookmark{}).
		Where("target_id = ? AND target_type = ?", targetID, targetType).
		Count(&count).Error
	return count, err
}

func requireTarget(tx *gorm.DB, target models.CounterTarget, targetID uint) error {
	var n int64
	if err := tx.Table(target.Table).Where("id = ?", targetID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrTargetNotFound
	}
	return nil
}

func incrementCounter(tx *gorm.DB, target models.CounterTarget, targetID uint) error {
	return tx.Table(target.Table).Where("id = ?", targetID).
		UpdateColumn(target.Column, gorm.Expr(target.Column+" + 1")).Error
}

// decrementCounter floors at zero so counter drift can never push a counter
// negative.
func decrementCounter(tx *gorm.DB, target models.CounterTarget, targetID uint) error {
	return tx.Table(target.Table).Where("id = ?", targetID).
		UpdateColumn(target.Column, gorm.Expr(
			"CASE WHEN "+target.Column+" > 0 THEN "+target.Column+" - 1 ELSE 0 END")).Error
}

func readCounter(tx *gorm.DB, target models.CounterTarget, targetID uint) (int64, error) {
	var count int64
	err := tx.Table(target.Table).Select(target.Column).Where("id = ?", targetID).Scan(&count).Error
	return count, err
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
