package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func TestToggleFollowRoundTrip(t *testing.T) {
	setupTestDB()

	alice := createTestUser(t, "alice@test.com", "user")
	bob := createTestUser(t, "bob@test.com", "user")

	following, err := ToggleFollow(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, following)

	isFollowing, err := IsFollowing(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.True(t, isFollowing)

	// The relation is directed.
	reverse, err := IsFollowing(bob.ID, alice.ID)
	assert.NoError(t, err)
	assert.False(t, reverse)

	following, err = ToggleFollow(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.False(t, following)

	// The edge must be gone, not soft-deleted.
	var rows int64
	database.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", alice.ID, bob.ID).
		Count(&rows)
	assert.Equal(t, int64(0), rows)
}

func TestToggleFollowSelf(t *testing.T) {
	setupTestDB()

	alice := createTestUser(t, "alice@test.com", "user")

	_, err := ToggleFollow(alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestToggleFollowTargetMissing(t *testing.T) {
	setupTestDB()

	alice := createTestUser(t, "alice@test.com", "user")

	_, err := ToggleFollow(alice.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var rows int64
	database.DB.Model(&models.Follow{}).Count(&rows)
	assert.Equal(t, int64(0), rows)
}

func TestGetFollowStats(t *testing.T) {
	setupTestDB()

	alice := createTestUser(t, "alice@test.com", "user")
	bob := createTestUser(t, "bob@test.com", "user")
	carol := createTestUser(t, "carol@test.com", "user")

	_, err := ToggleFollow(bob.ID, alice.ID)
	assert.NoError(t, err)
	_, err = ToggleFollow(carol.ID, alice.ID)
	assert.NoError(t, err)
	_, err = ToggleFollow(alice.ID, bob.ID)
	assert.NoError(t, err)

	// Anonymous viewer gets counts only.
	stats, err := GetFollowStats(alice.ID, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.FollowerCount)
	assert.Equal(t, int64(1), stats.FollowingCount)
	assert.Nil(t, stats.IsFollowing)

	// A logged-in viewer sees their own edge state.
	stats, err = GetFollowStats(alice.ID, bob.ID)
	assert.NoError(t, err)
	assert.NotNil(t, stats.IsFollowing)
	assert.True(t, *stats.IsFollowing)

	// Looking at your own profile never reports an edge.
	stats, err = GetFollowStats(alice.ID, alice.ID)
	assert.NoError(t, err)
	assert.Nil(t, stats.IsFollowing)
}

func TestFindFollowersAndFollowing(t *testing.T) {
	setupTestDB()

	alice := createTestUser(t, "alice@test.com", "user")
	var followers []models.User
	for i := 0; i < 3; i++ {
		u := createTestUser(t, fmt.Sprintf("fan%d@test.com", i), "user")
		_, err := ToggleFollow(u.ID, alice.ID)
		assert.NoError(t, err)
		followers = append(followers, u)
	}
	_, err := ToggleFollow(alice.ID, followers[0].ID)
	assert.NoError(t, err)

	users, total, err := FindFollowers(alice.ID, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, users, 2)

	users, total, err = FindFollowing(alice.ID, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, users, 1)
	assert.Equal(t, followers[0].ID, users[0].ID)

	ids, err := GetFollowingIDs(alice.ID)
	assert.NoError(t, err)
	assert.Equal(t, []uint{followers[0].ID}, ids)
}

func TestFindFollowersUserNotFound(t *testing.T) {
	setupTestDB()

	_, _, err := FindFollowers(9999, 1, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
