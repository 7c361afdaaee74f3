package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func TestReconcileLikeCountHealsDrift(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	liker := createTestUser(t, "liker@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	review := createTestReview(t, model.ID, author.ID)

	_, _, err := ToggleLike(liker.ID, review.ID, models.LikeTargetReview)
	assert.NoError(t, err)

	// Corrupt the cached counter behind the engine's back.
	database.DB.Model(&models.Review{}).Where("id = ?", review.ID).
		UpdateColumn("like_count", 42)

	count, corrected, err := ReconcileLikeCount(review.ID, models.LikeTargetReview)
	assert.NoError(t, err)
	assert.True(t, corrected)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, reviewLikeCount(t, review.ID))
}

func TestReconcileIsIdempotent(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	liker := createTestUser(t, "liker@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	review := createTestReview(t, model.ID, author.ID)

	_, _, err := ToggleLike(liker.ID, review.ID, models.LikeTargetReview)
	assert.NoError(t, err)

	count, corrected, err := ReconcileLikeCount(review.ID, models.LikeTargetReview)
	assert.NoError(t, err)
	assert.False(t, corrected)
	assert.Equal(t, int64(1), count)

	// Running it again changes nothing.
	count, corrected, err = ReconcileLikeCount(review.ID, models.LikeTargetReview)
	assert.NoError(t, err)
	assert.False(t, corrected)
	assert.Equal(t, int64(1), count)
}

func TestReconcileLikeCountTargetNotFound(t *testing.T) {
	setupTestDB()

	_, _, err := ReconcileLikeCount(9999, models.LikeTargetReview)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestReconcileBookmarkCount(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	_, _, err := ToggleBookmark(user.ID, model.ID, models.BookmarkTargetModel)
	assert.NoError(t, err)

	database.DB.Model(&models.AIModel{}).Where("id = ?", model.ID).
		UpdateColumn("bookmark_count", 0)

	count, corrected, err := ReconcileBookmarkCount(model.ID, models.BookmarkTargetModel)
	assert.NoError(t, err)
	assert.True(t, corrected)
	assert.Equal(t, int64(1), count)
}

func TestReconcileReviewCount(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	createTestReview(t, model.ID, author.ID)
	inactive := createTestReview(t, model.ID, author.ID)
	database.DB.Model(&inactive).UpdateColumn("active", false)

	database.DB.Model(&models.AIModel{}).Where("id = ?", model.ID).
		UpdateColumn("review_count", 7)

	// Only the active review counts.
	count, corrected, err := ReconcileReviewCount(model.ID)
	assert.NoError(t, err)
	assert.True(t, corrected)
	assert.Equal(t, int64(1), count)
}

func TestReconcileAll(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	liker := createTestUser(t, "liker@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	review := createTestReview(t, model.ID, author.ID)

	_, _, err := ToggleLike(liker.ID, review.ID, models.LikeTargetReview)
	assert.NoError(t, err)
	_, _, err = ToggleBookmark(liker.ID, model.ID, models.BookmarkTargetModel)
	assert.NoError(t, err)

	// Bring the review count in line first, then corrupt two counters and
	// leave the rest alone.
	database.DB.Model(&models.AIModel{}).Where("id = ?", model.ID).
		UpdateColumn("review_count", 1)
	database.DB.Model(&models.Review{}).Where("id = ?", review.ID).
		UpdateColumn("like_count", 99)
	database.DB.Model(&models.AIModel{}).Where("id = ?", model.ID).
		UpdateColumn("bookmark_count", 99)

	corrected, err := ReconcileAll()
	assert.NoError(t, err)
	assert.Equal(t, 2, corrected)

	// Everything agrees now; a second sweep corrects nothing.
	corrected, err = ReconcileAll()
	assert.NoError(t, err)
	assert.Equal(t, 0, corrected)
}
