package services

import (
	"go.uber.org/zap"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

// The reconcile functions recompute a cached counter from the ledger and
// overwrite it only when it drifted. They are the only writers of counter
// columns besides the toggle engine and the review lifecycle, and they are
// safe to run concurrently with live toggles: a toggle landing mid-pass
// leaves at worst a transient off-by-one that the next pass heals.

// ReconcileLikeCount returns the recomputed count and whether the cached
// value had to be corrected.
func ReconcileLikeCount(targetID uint, targetType models.LikeTargetType) (int64, bool, error) {
	target, ok := targetType.Target()
	if !ok {
		return 0, false, ErrInvalidTargetType
	}

	var actual int64
	if err := database.DB.Model(&models.Like{}).
		Where("target_id = ? AND target_type = ?", targetID, targetType).
		Count(&actual).Error; err != nil {
		return 0, false, err
	}

	return overwriteIfDrifted(target, targetID, actual)
}

func ReconcileBookmarkCount(targetID uint, targetType models.BookmarkTargetType) (int64, bool, error) {
	target, ok := targetType.Target()
	if !ok {
		return 0, false, ErrInvalidTargetType
	}

	var actual int64
	if err := database.DB.Model(&models.Bookmark{}).
		Where("target_id = ? AND target_type = ?", targetID, targetType).
		Count(&actual).Error; err != nil {
		return 0, false, err
	}

	return overwriteIfDrifted(target, targetID, actual)
}

// ReconcileReviewCount recounts a model's active reviews.
func ReconcileReviewCount(modelID uint) (int64, bool, error) {
	var actual int64
	if err := database.DB.Model(&models.Review{}).
		Where("model_id = ? AND active = ?", modelID, true).
		Count(&actual).Error; err != nil {
		return 0, false, err
	}

	target := models.CounterTarget{Model: &models.AIModel{}, Table: "ai_models", Column: "review_count"}
	return overwriteIfDrifted(target, modelID, actual)
}

func overwriteIfDrifted(target models.CounterTarget, targetID uint, actual int64) (int64, bool, error) {
	var current int64
	res := database.DB.Table(target.Table).Select(target.Column).Where("id = ?", targetID).Scan(&current)
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, ErrTargetNotFound
	}

	if current == actual {
		return actual, false, nil
	}

	if err := database.DB.Table(target.Table).Where("id = ?", targetID).
		UpdateColumn(target.Column, actual).Error; err != nil {
		return 0, false, err
	}

	zap.L().Info("counter reconciled",
		zap.String("table", target.Table),
		zap.String("column", target.Column),
		zap.Uint("target_id", targetID),
		zap.Int64("was", current),
		zap.Int64("now", actual))

	return actual, true, nil
}

// ReconcileAll sweeps every like/bookmark target and every model's review
// count once. It returns the number of corrected counters.
func ReconcileAll() (int, error) {
	corrected := 0

	likeKinds := []models.LikeTargetType{
		models.LikeTargetReview,
		models.LikeTargetRecipe,
		models.LikeTargetComment,
		models.LikeTargetProposal,
	}
	for _, kind := range likeKinds {
		target, _ := kind.Target()
		ids, err := targetIDs(target)
		if err != nil {
			return corrected, err
		}
		for _, id := range ids {
			if _, fixed, err := ReconcileLikeCount(id, kind); err != nil {
				return corrected, err
			} else if fixed {
				corrected++
			}
		}
	}

	bookmarkKinds := []models.BookmarkTargetType{
		models.BookmarkTargetReview,
		models.BookmarkTargetRecipe,
		models.BookmarkTargetModel,
	}
	for _, kind := range bookmarkKinds {
		target, _ := kind.Target()
		ids, err := targetIDs(target)
		if err != nil {
			return corrected, err
		}
		for _, id := range ids {
			if _, fixed, err := ReconcileBookmarkCount(id, kind); err != nil {
				return corrected, err
			} else if fixed {
				corrected++
			}
		}
	}

	modelIDs, err := targetIDs(models.CounterTarget{Table: "ai_models"})
	if err != nil {
		return corrected, err
	}
	for _, id := range modelIDs {
		if _, fixed, err := ReconcileReviewCount(id); err != nil {
			return corrected, err
		} else if fixed {
			corrected++
		}
	}

	return corrected, nil
}

func targetIDs(target models.CounterTarget) ([]uint, error) {
	var ids []uint
	err := database.DB.Table(target.Table).Pluck("id", &ids).Error
	return ids, err
}
