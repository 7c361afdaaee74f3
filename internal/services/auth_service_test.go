package services

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserFirstAccountIsAdmin(t *testing.T) {
	setupTestDB()

	first, err := RegisterUser("first@test.com", "password123", "first")
	assert.NoError(t, err)
	assert.Equal(t, "admin", first.Role)
	assert.True(t, first.Enabled)

	second, err := RegisterUser("second@test.com", "password123", "second")
	assert.NoError(t, err)
	assert.Equal(t, "user", second.Role)

	// Password is stored hashed.
	assert.NotEqual(t, "password123", first.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first.Password), []byte("password123")))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setupTestDB()

	_, err := RegisterUser("dup@test.com", "password123", "dup")
	assert.NoError(t, err)

	_, err = RegisterUser("dup@test.com", "password456", "dup2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginUser(t *testing.T) {
	setupTestDB()
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	_, err := RegisterUser("login@test.com", "password123", "login")
	assert.NoError(t, err)

	token, u, err := LoginUser("login@test.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "login@test.com", u.Email)

	_, _, err = LoginUser("login@test.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
