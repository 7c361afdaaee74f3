package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func TestCreateReviewUpdatesModelStats(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	review := models.Review{
		ModelID: model.ID,
		Title:   "Great for code",
		Content: "Handles refactors well.",
		Rating:  5,
		Tags:    models.StringList{"coding"},
	}
	created, err := CreateReview(author.ID, &review)
	assert.NoError(t, err)
	assert.True(t, created.Active)

	second := models.Review{
		ModelID: model.ID,
		Title:   "Mediocre at math",
		Content: "Slips on arithmetic.",
		Rating:  3,
		Tags:    models.StringList{},
	}
	_, err = CreateReview(author.ID, &second)
	assert.NoError(t, err)

	var reloaded models.AIModel
	assert.NoError(t, database.DB.First(&reloaded, model.ID).Error)
	assert.Equal(t, 2, reloaded.ReviewCount)
	assert.InDelta(t, 4.0, reloaded.AverageRating, 0.001)
}

func TestCreateReviewValidation(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	bad := models.Review{ModelID: model.ID, Title: "t", Content: "c", Rating: 6}
	_, err := CreateReview(author.ID, &bad)
	assert.ErrorIs(t, err, ErrInvalidRating)

	missing := models.Review{ModelID: 9999, Title: "t", Content: "c", Rating: 4}
	_, err = CreateReview(author.ID, &missing)
	assert.ErrorIs(t, err, ErrModelNotFound)

	database.DB.Model(&models.AIModel{}).Where("id = ?", model.ID).UpdateColumn("active", false)
	inactive := models.Review{ModelID: model.ID, Title: "t", Content: "c", Rating: 4}
	_, err = CreateReview(author.ID, &inactive)
	assert.ErrorIs(t, err, ErrModelInactive)
}

func TestUpdateReviewOwnerOnly(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	other := createTestUser(t, "other@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	review := models.Review{ModelID: model.ID, Title: "t", Content: "c", Rating: 2, Tags: models.StringList{}}
	created, err := CreateReview(author.ID, &review)
	assert.NoError(t, err)

	_, err = UpdateReview(created.ID, other.ID, map[string]interface{}{"rating": 5})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := UpdateReview(created.ID, author.ID, map[string]interface{}{"rating": 5})
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)

	// The model's average follows the edit.
	var reloaded models.AIModel
	assert.NoError(t, database.DB.First(&reloaded, model.ID).Error)
	assert.InDelta(t, 5.0, reloaded.AverageRating, 0.001)
}

func TestDeleteReviewSoftDeletesAndRecounts(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	keep := models.Review{ModelID: model.ID, Title: "keep", Content: "c", Rating: 4, Tags: models.StringList{}}
	_, err := CreateReview(author.ID, &keep)
	assert.NoError(t, err)

	drop := models.Review{ModelID: model.ID, Title: "drop", Content: "c", Rating: 2, Tags: models.StringList{}}
	created, err := CreateReview(author.ID, &drop)
	assert.NoError(t, err)

	assert.NoError(t, DeleteReview(created.ID, author.ID))

	// The row survives but goes inactive.
	var row models.Review
	assert.NoError(t, database.DB.First(&row, created.ID).Error)
	assert.False(t, row.Active)

	_, err = GetReview(created.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	var reloaded models.AIModel
	assert.NoError(t, database.DB.First(&reloaded, model.ID).Error)
	assert.Equal(t, 1, reloaded.ReviewCount)
	assert.InDelta(t, 4.0, reloaded.AverageRating, 0.001)
}

func TestGetReviewCountsView(t *testing.T) {
	setupTestDB()

	author := createTestUser(t, "author@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	review := createTestReview(t, model.ID, author.ID)

	fetched, err := GetReview(review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, fetched.ViewCount)

	fetched, err = GetReview(review.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, fetched.ViewCount)
}
