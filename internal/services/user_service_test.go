package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func TestFindUserByIDCaches(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := createTestUser(t, "cached@test.com", "user")

	fetched, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)

	// The cache entry exists now; a direct DB change is invisible until
	// invalidation.
	assert.True(t, mr.Exists(fmt.Sprintf("user:%d", user.ID)))
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).UpdateColumn("nickname", "changed")

	fetched, err = FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "cached@test.com", fetched.Nickname)
}

func TestUpdateUserInvalidatesCache(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user := createTestUser(t, "update@test.com", "user")

	_, err := FindUserByID(user.ID)
	assert.NoError(t, err)

	updated, err := UpdateUser(user.ID, map[string]interface{}{"nickname": "fresh"})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", updated.Nickname)

	assert.False(t, mr.Exists(fmt.Sprintf("user:%d", user.ID)))

	fetched, err := FindUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "fresh", fetched.Nickname)
}

func TestUpdateUserOptimisticLock(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "lock@test.com", "user")

	// Simulate a concurrent writer bumping the version between read and
	// update.
	_, err := UpdateUser(user.ID, map[string]interface{}{"nickname": "first-writer"})
	assert.NoError(t, err)

	var stale models.User
	assert.NoError(t, database.DB.First(&stale, user.ID).Error)
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).
		UpdateColumn("version", stale.Version+1)

	// UpdateUser re-reads inside its transaction, so it sees the bumped
	// version and succeeds; two full racing calls serialize on the version
	// column instead.
	updated, err := UpdateUser(user.ID, map[string]interface{}{"nickname": "second-writer"})
	assert.NoError(t, err)
	assert.Equal(t, "second-writer", updated.Nickname)
}

func TestUpdateUserNotFound(t *testing.T) {
	setupTestDB()

	_, err := UpdateUser(9999, map[string]interface{}{"nickname": "ghost"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUsersPagination(t *testing.T) {
	setupTestDB()

	for i := 0; i < 5; i++ {
		createTestUser(t, fmt.Sprintf("user%d@test.com", i), "user")
	}

	users, total, err := FindUsers(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 2)

	users, _, err = FindUsers(3, 2)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
}
