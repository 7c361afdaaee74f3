package proposal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/api/v1/proposal"
	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
	"github.com/SKHU-AQ-Project/aq-backend/internal/services"
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
		&models.Like{},
	)
	err = db.AutoMigrate(
		&models.User{},
		&models.AIModel{},
		&models.ModelProposal{},
		&models.Like{},
	)
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func getProposal(t *testing.T, proposalID uint, viewer *models.User) (int, proposal.ProposalResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req, _ := http.NewRequest("GET", "/proposals/"+strconv.Itoa(int(proposalID)), nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(proposalID))}}
	if viewer != nil {
		c.Set("user", *viewer)
	}

	proposal.GetProposal(c)

	var resp struct {
		Status int                       `json:"status"`
		Data   proposal.ProposalResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp.Data
}

func TestGetProposalDecoratesViewerLikeState(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	submitter := models.User{Email: "submitter@test.com", Nickname: "submitter", Role: "user", Enabled: true}
	database.DB.Create(&submitter)
	fan := models.User{Email: "fan@test.com", Nickname: "fan", Role: "user", Enabled: true}
	database.DB.Create(&fan)
	bystander := models.User{Email: "bystander@test.com", Nickname: "bystander", Role: "user", Enabled: true}
	database.DB.Create(&bystander)

	p := models.ModelProposal{
		UserID:       submitter.ID,
		Name:         "GPT-Test",
		Provider:     "TestLab",
		Category:     models.CategoryTextGeneration,
		Capabilities: models.StringList{},
		Status:       models.ProposalStatusPending,
	}
	database.DB.Create(&p)

	liked, _, err := services.ToggleLike(fan.ID, p.ID, models.LikeTargetProposal)
	assert.NoError(t, err)
	assert.True(t, liked)

	status, data := getProposal(t, p.ID, &fan)
	assert.Equal(t, http.StatusOK, status)
	assert.NotNil(t, data.IsLiked)
	assert.True(t, *data.IsLiked)

	status, data = getProposal(t, p.ID, &bystander)
	assert.Equal(t, http.StatusOK, status)
	assert.NotNil(t, data.IsLiked)
	assert.False(t, *data.IsLiked)

	// Anonymous viewers get no like state at all.
	status, data = getProposal(t, p.ID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, data.IsLiked)
}
