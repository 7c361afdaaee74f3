package interaction_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/interaction"
	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(
		&models.User{},
		&models.AIModel{},
		&models.ModelProposal{},
		&models.Review{},
		&models.Recipe{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
	)
	err = db.AutoMigrate(
		&models.User{},
		&models.AIModel{},
		&models.ModelProposal{},
		&models.Review{},
		&models.Recipe{},
		&models.Comment{},
		&models.Like{},
		&models.Bookmark{},
	)
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func TestToggleLikeHandler(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{Email: "user@test.com", Nickname: "user", Role: "user", Enabled: true}
	database.DB.Create(&user)
	author := models.User{Email: "author@test.com", Nickname: "author", Role: "user", Enabled: true}
	database.DB.Create(&author)

	model := models.AIModel{Name: "GPT-Test", Provider: "TestLab", Category: models.CategoryTextGeneration, Capabilities: models.StringList{}, Active: true}
	database.DB.Create(&model)
	review := models.Review{ModelID: model.ID, AuthorID: author.ID, Title: "t", Content: "c", Rating: 4, Tags: models.StringList{}, Active: true}
	database.DB.Create(&review)

	doToggle := func() (int, interaction.ToggleResponse) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(interaction.ToggleLikeInput{
			TargetID:   review.ID,
			TargetType: "REVIEW",
		})
		req, _ := http.NewRequest("POST", "/interactions/likes/toggle", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("user", user)

		interaction.ToggleLike(c)

		var resp struct {
			Status int                        `json:"status"`
			Data   interaction.ToggleResponse `json:"data"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		return w.Code, resp.Data
	}

	status, data := doToggle()
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, data.Active)
	assert.Equal(t, int64(1), data.Count)

	status, data = doToggle()
	assert.Equal(t, http.StatusOK, status)
	assert.False(t, data.Active)
	assert.Equal(t, int64(0), data.Count)
}

func TestToggleLikeHandlerRejectsBadTargetType(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{Email: "user@test.com", Nickname: "user", Role: "user", Enabled: true}
	database.DB.Create(&user)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(map[string]interface{}{
		"target_id":   1,
		"target_type": "VIDEO",
	})
	req, _ := http.NewRequest("POST", "/interactions/likes/toggle", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user", user)

	interaction.ToggleLike(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleLikeHandlerTargetMissing(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	user := models.User{Email: "user@test.com", Nickname: "user", Role: "user", Enabled: true}
	database.DB.Create(&user)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(interaction.ToggleLikeInput{
		TargetID:   9999,
		TargetType: "REVIEW",
	})
	req, _ := http.NewRequest("POST", "/interactions/likes/toggle", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set("user", user)

	interaction.ToggleLike(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
