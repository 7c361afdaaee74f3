package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func createTestUpdateRequest(t *testing.T, userID, modelID uint) models.ModelUpdateRequest {
	t.Helper()
	request := models.ModelUpdateRequest{
		UserID:  userID,
		ModelID: modelID,
		Reason:  "pricing changed",
		Status:  models.UpdateRequestStatusPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		t.Fatalf("failed to create test update request: %v", err)
	}
	return request
}

func TestCreateUpdateRequest(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	request := models.ModelUpdateRequest{
		ModelID:     model.ID,
		Description: strPtr("now with vision support"),
		Reason:      "new capability shipped",
	}
	created, err := CreateUpdateRequest(user.ID, &request)
	assert.NoError(t, err)
	assert.Equal(t, models.UpdateRequestStatusPending, created.Status)
	assert.Equal(t, user.ID, created.UserID)
}

func TestCreateUpdateRequestModelNotFound(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")

	request := models.ModelUpdateRequest{ModelID: 9999, Reason: "whatever"}
	_, err := CreateUpdateRequest(user.ID, &request)
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestCreateUpdateRequestInactiveModel(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	database.DB.Model(&model).UpdateColumn("active", false)

	request := models.ModelUpdateRequest{ModelID: model.ID, Reason: "whatever"}
	_, err := CreateUpdateRequest(user.ID, &request)
	assert.ErrorIs(t, err, ErrModelInactive)
}

func TestApproveUpdateRequestPatchesOnlySuppliedFields(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	database.DB.Model(&model).Updates(map[string]interface{}{
		"description":           "original description",
		"input_price_per_token": 0.5,
	})

	request := models.ModelUpdateRequest{
		ModelID:            model.ID,
		InputPricePerToken: floatPtr(0.25),
		Reason:             "price drop",
	}
	created, err := CreateUpdateRequest(user.ID, &request)
	assert.NoError(t, err)

	processed, err := ProcessUpdateRequest(admin.ID, created.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, models.UpdateRequestStatusApproved, processed.Status)
	assert.NotNil(t, processed.ProcessedBy)
	assert.Equal(t, admin.ID, *processed.ProcessedBy)
	assert.NotNil(t, processed.ProcessedAt)

	// Only the supplied field changed; nil diff fields left the rest alone.
	var reloaded models.AIModel
	assert.NoError(t, database.DB.First(&reloaded, model.ID).Error)
	assert.Equal(t, 0.25, reloaded.InputPricePerToken)
	assert.Equal(t, "original description", reloaded.Description)
	assert.Equal(t, "GPT-Test", reloaded.Name)
}

func TestRejectUpdateRequestLeavesModelUntouched(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	request := models.ModelUpdateRequest{
		ModelID: model.ID,
		Name:    strPtr("Renamed-Model"),
		Reason:  "rename",
	}
	created, err := CreateUpdateRequest(user.ID, &request)
	assert.NoError(t, err)

	processed, err := ProcessUpdateRequest(admin.ID, created.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, models.UpdateRequestStatusRejected, processed.Status)

	var reloaded models.AIModel
	assert.NoError(t, database.DB.First(&reloaded, model.ID).Error)
	assert.Equal(t, "GPT-Test", reloaded.Name)
}

func TestProcessUpdateRequestIsTerminal(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	request := createTestUpdateRequest(t, user.ID, model.ID)

	_, err := ProcessUpdateRequest(admin.ID, request.ID, false)
	assert.NoError(t, err)

	_, err = ProcessUpdateRequest(admin.ID, request.ID, true)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestProcessUpdateRequestRequiresAdmin(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")
	request := createTestUpdateRequest(t, user.ID, model.ID)

	_, err := ProcessUpdateRequest(user.ID, request.ID, true)
	assert.ErrorIs(t, err, ErrForbidden)

	reloaded, err := GetUpdateRequestByID(request.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.UpdateRequestStatusPending, reloaded.Status)
}

func TestFindUpdateRequestsByStatus(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	model := createTestModel(t, "GPT-Test")

	first := createTestUpdateRequest(t, user.ID, model.ID)
	createTestUpdateRequest(t, user.ID, model.ID)

	_, err := ProcessUpdateRequest(admin.ID, first.ID, true)
	assert.NoError(t, err)

	pending, total, err := FindUpdateRequests(models.UpdateRequestStatusPending, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, pending, 1)

	approved, total, err := FindUpdateRequests(models.UpdateRequestStatusApproved, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, first.ID, approved[0].ID)
}
