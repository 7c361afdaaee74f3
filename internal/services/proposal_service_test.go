package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

func TestCreateProposal(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")

	proposal := models.ModelProposal{
		Name:         "New-LLM",
		Provider:     "TestLab",
		Category:     models.CategoryTextGeneration,
		Capabilities: models.StringList{"chat"},
	}
	created, err := CreateProposal(user.ID, &proposal)
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusPending, created.Status)
	assert.Equal(t, 0, created.LikeCount)
	assert.Equal(t, user.ID, created.UserID)
}

func TestCreateProposalDuplicatePending(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	createTestProposal(t, user.ID, "New-LLM")

	dup := models.ModelProposal{
		Name:         "New-LLM",
		Provider:     "TestLab",
		Category:     models.CategoryTextGeneration,
		Capabilities: models.StringList{},
	}
	_, err := CreateProposal(user.ID, &dup)
	assert.ErrorIs(t, err, ErrDuplicateProposal)
}

func TestCreateProposalModelAlreadyRegistered(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	createTestModel(t, "GPT-Test")

	proposal := models.ModelProposal{
		Name:         "GPT-Test",
		Provider:     "TestLab",
		Category:     models.CategoryTextGeneration,
		Capabilities: models.StringList{},
	}
	_, err := CreateProposal(user.ID, &proposal)
	assert.ErrorIs(t, err, ErrModelAlreadyExists)
}

func TestApproveProposalManually(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	approved, err := ApproveProposal(admin.ID, proposal.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusApproved, approved.Status)
	assert.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, admin.ID, *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
	assert.NotNil(t, approved.ModelID)

	var model models.AIModel
	assert.NoError(t, database.DB.First(&model, *approved.ModelID).Error)
	assert.Equal(t, "New-LLM", model.Name)
	assert.Equal(t, "TestLab", model.Provider)
}

func TestApproveProposalRequiresAdmin(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	_, err := ApproveProposal(user.ID, proposal.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	reloaded, err := GetProposalByID(proposal.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusPending, reloaded.Status)
}

func TestApproveProposalIsTerminal(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	_, err := ApproveProposal(admin.ID, proposal.ID, false)
	assert.NoError(t, err)

	// Second approval loses the claim.
	_, err = ApproveProposal(admin.ID, proposal.ID, false)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// Rejection after approval is equally refused.
	_, err = RejectProposal(admin.ID, proposal.ID, "changed my mind")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// Exactly one catalog model was ever created.
	var modelCount int64
	database.DB.Model(&models.AIModel{}).Where("name = ?", "New-LLM").Count(&modelCount)
	assert.Equal(t, int64(1), modelCount)
}

func TestRejectProposal(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	rejected, err := RejectProposal(admin.ID, proposal.ID, "insufficient documentation")
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusRejected, rejected.Status)
	assert.Equal(t, "insufficient documentation", rejected.RejectionReason)
	assert.Nil(t, rejected.ModelID)

	var modelCount int64
	database.DB.Model(&models.AIModel{}).Count(&modelCount)
	assert.Equal(t, int64(0), modelCount)
}

func TestRejectedProposalNeverAutoApproves(t *testing.T) {
	setupTestDB()

	oldThreshold := AutoApproveThreshold()
	SetAutoApproveThreshold(2)
	defer SetAutoApproveThreshold(oldThreshold)

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	_, err := RejectProposal(admin.ID, proposal.ID, "no")
	assert.NoError(t, err)

	// Likes keep accruing on the frozen proposal but the terminal status and
	// the absence of a catalog model both hold.
	fan1 := createTestUser(t, "fan1@test.com", "user")
	fan2 := createTestUser(t, "fan2@test.com", "user")
	_, _, err = ToggleLike(fan1.ID, proposal.ID, models.LikeTargetProposal)
	assert.NoError(t, err)
	_, count, err := ToggleLike(fan2.ID, proposal.ID, models.LikeTargetProposal)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	reloaded, err := GetProposalByID(proposal.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusRejected, reloaded.Status)

	var modelCount int64
	database.DB.Model(&models.AIModel{}).Count(&modelCount)
	assert.Equal(t, int64(0), modelCount)
}

func TestTryAutoApproveBelowThreshold(t *testing.T) {
	setupTestDB()

	user := createTestUser(t, "user@test.com", "user")
	proposal := createTestProposal(t, user.ID, "New-LLM")

	err := TryAutoApprove(proposal.ID, int64(AutoApproveThreshold()-1))
	assert.NoError(t, err)

	reloaded, err := GetProposalByID(proposal.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ProposalStatusPending, reloaded.Status)
}

func TestTryAutoApproveMissingProposalIsNoOp(t *testing.T) {
	setupTestDB()

	err := TryAutoApprove(9999, int64(AutoApproveThreshold()))
	assert.NoError(t, err)
}

func TestFindProposalsFilters(t *testing.T) {
	setupTestDB()

	admin := createTestUser(t, "admin@test.com", "admin")
	user := createTestUser(t, "user@test.com", "user")
	first := createTestProposal(t, user.ID, "Alpha-LLM")
	createTestProposal(t, user.ID, "Beta-LLM")

	_, err := ApproveProposal(admin.ID, first.ID, false)
	assert.NoError(t, err)

	pending, total, err := FindProposals(ProposalFilter{
		Status: models.ProposalStatusPending,
		Page:   1,
		Limit:  10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Beta-LLM", pending[0].Name)

	byKeyword, total, err := FindProposals(ProposalFilter{
		Keyword: "Alpha",
		Page:    1,
		Limit:   10,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Alpha-LLM", byKeyword[0].Name)
}
