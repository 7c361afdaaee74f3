package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// CreateReview stores a review and bumps the model's review count and
// average rating. Review counters are owned by this lifecycle, not by the
// toggle engine.
func CreateReview(authorID uint, review *models.Review) (*models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := FindUserByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var model models.AIModel
	if err := database.DB.First(&model, review.ModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	if !model.Active {
		return nil, ErrModelInactive
	}

	review.AuthorID = authorID
	review.Active = true

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(review).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.AIModel{}).Where("id = ?", review.ModelID).
		UpdateColumn("review_count", gorm.Expr("review_count + 1")).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := refreshAverageRating(tx, review.ModelID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	zap.L().Info("review created",
		zap.Uint("review_id", review.ID),
		zap.Uint("model_id", review.ModelID),
		zap.Uint("author_id", authorID))

	return review, nil
}

// ReviewFilter narrows and pages review listings.
type ReviewFilter struct {
	ModelID  uint
	AuthorID uint
	Keyword  string
	Page     int
	Limit    int
}

// FindReviews lists active reviews, newest first.
func FindReviews(filter ReviewFilter) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	query := database.DB.Model(&models.Review{}).Where("active = ?", true)

	if filter.ModelID != 0 {
		query = query.Where("model_id = ?", filter.ModelID)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetReview fetches one review and counts the view.
func GetReview(id uint) (*models.Review, error) {
	var review models.Review
	if err := database.DB.Where("active = ?", true).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	database.DB.Model(&review).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	review.ViewCount++

	return &review, nil
}

// UpdateReview lets the author revise their review and refreshes the model's
// average rating.
func UpdateReview(id, userID uint, updates map[string]interface{}) (*models.Review, error) {
	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if review.AuthorID != userID {
		return nil, ErrForbidden
	}

	if rating, ok := updates["rating"].(int); ok && (rating < 1 || rating > 5) {
		return nil, ErrInvalidRating
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&review).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := refreshAverageRating(tx, review.ModelID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	database.DB.First(&review, id)
	return &review, nil
}

// DeleteReview soft-deletes: the row is kept but goes inactive, and the
// model's review count drops (floored at zero).
func DeleteReview(id, userID uint) error {
	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if review.AuthorID != userID {
		return ErrForbidden
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&review).UpdateColumn("active", false).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.AIModel{}).Where("id = ?", review.ModelID).
		UpdateColumn("review_count", gorm.Expr(
			"CASE WHEN review_count > 0 THEN review_count - 1 ELSE 0 END")).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := refreshAverageRating(tx, review.ModelID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	zap.L().Info("review deleted", zap.Uint("review_id", id), zap.Uint("user_id", userID))
	return nil
}

// refreshAverageRating recomputes the model's average rating over its active
// reviews.
func refreshAverageRating(tx *gorm.DB, modelID uint) error {
	var avg float64
	if err := tx.Model(&models.Review{}).
		Where("model_id = ? AND active = ?", modelID, true).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return err
	}

	return tx.Model(&models.AIModel{}).Where("id = ?", modelID).
		UpdateColumn("average_rating", avg).Error
}
