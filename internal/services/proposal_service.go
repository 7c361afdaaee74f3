package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrProposalNotFound = errors.New("model proposal not found")
var ErrDuplicateProposal = errors.New("a pending proposal for this model already exists")
var ErrModelAlreadyExists = errors.New("this model is already registered")
var ErrAlreadyProcessed = errors.New("already processed")
var ErrForbidden = errors.New("forbidden")

// autoApproveThreshold is read at evaluation time, so changing it applies to
// every still-pending proposal regardless of when it was submitted.
var autoApproveThreshold = 10

func SetAutoApproveThreshold(n int) {
	autoApproveThreshold = n
}

func AutoApproveThreshold() int {
	return autoApproveThreshold
}

// CreateProposal stores a new PENDING proposal. Submissions that duplicate a
// pending proposal or an active catalog model by (name, provider) are
// rejected outright, never merged.
func CreateProposal(userID uint, proposal *models.ModelProposal) (*models.ModelProposal, error) {
	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var pending int64
	if err := database.DB.Model(&models.ModelProposal{}).
		Where("name = ? AND provider = ? AND status = ?",
			proposal.Name, proposal.Provider, models.ProposalStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrDuplicateProposal
	}

	var registered int64
	if err := database.DB.Model(&models.AIModel{}).
		Where("name = ? AND provider = ? AND active = ?", proposal.Name, proposal.Provider, true).
		Count(&registered).Error; err != nil {
		return nil, err
	}
	if registered > 0 {
		return nil, ErrModelAlreadyExists
	}

	proposal.UserID = userID
	proposal.Status = models.ProposalStatusPending
	proposal.LikeCount = 0

	if err := database.DB.Create(proposal).Error; err != nil {
		return nil, err
	}

	zap.L().Info("model proposal created",
		zap.Uint("proposal_id", proposal.ID),
		zap.Uint("user_id", userID),
		zap.String("name", proposal.Name),
		zap.String("provider", proposal.Provider))

	return proposal, nil
}

// ProposalFilter narrows and pages proposal listings.
type ProposalFilter struct {
	Status       models.ProposalStatus
	Keyword      string
	UserID       uint
	OrderByLikes bool
	Page         int
	Limit        int
}

// FindProposals retrieves a paginated list of proposals with filtering.
func FindProposals(filter ProposalFilter) ([]models.ModelProposal, int64, error) {
	var proposals []models.ModelProposal
	var total int64

	query := database.DB.Model(&models.ModelProposal{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR provider LIKE ? OR description LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at desc"
	if filter.OrderByLikes {
		order = "like_count desc, created_at desc"
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order(order).Limit(filter.Limit).Offset(offset).Find(&proposals).Error; err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

func GetProposalByID(id uint) (*models.ModelProposal, error) {
	var proposal models.ModelProposal
	if err := database.DB.First(&proposal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

// ApproveProposal moves a PENDING proposal to APPROVED and materializes the
// canonical catalog model from the proposed fields, all in one transaction.
// The status flip is a conditional update on status, so exactly one of a
// racing manual decision and auto-approval wins; the loser sees
// ErrAlreadyProcessed.
func ApproveProposal(actorID, proposalID uint, auto bool) (*models.ModelProposal, error) {
	if !auto {
		actor, err := FindUserByID(actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var proposal models.ModelProposal
	if err := tx.First(&proposal, proposalID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	claim := tx.Model(&models.ModelProposal{}).
		Where("id = ? AND status = ?", proposalID, models.ProposalStatusPending)
	if auto {
		claim = claim.Where("like_count >= ?", autoApproveThreshold)
	}
	res := claim.Updates(map[string]interface{}{
		"status":      models.ProposalStatusApproved,
		"approved_by": actorID,
		"approved_at": time.Now(),
	})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAlreadyProcessed
	}

	model := proposal.ToModel()
	if err := tx.Create(&model).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.ModelProposal{}).Where("id = ?", proposalID).
		UpdateColumn("model_id", model.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	zap.L().Info("model proposal approved",
		zap.Uint("proposal_id", proposalID),
		zap.Uint("model_id", model.ID),
		zap.Uint("actor_id", actorID),
		zap.Bool("auto", auto))

	return GetProposalByID(proposalID)
}

// RejectProposal moves a PENDING proposal to REJECTED with a reason. The
// like count accumulated so far is frozen; no catalog model is created.
func RejectProposal(adminID, proposalID uint, reason string) (*models.ModelProposal, error) {
	admin, err := FindUserByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, ErrForbidden
	}

	var proposal models.ModelProposal
	if err := database.DB.First(&proposal, proposalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	res := database.DB.Model(&models.ModelProposal{}).
		Where("id = ? AND status = ?", proposalID, models.ProposalStatusPending).
		Updates(map[string]interface{}{
			"status":           models.ProposalStatusRejected,
			"rejection_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyProcessed
	}

	zap.L().Info("model proposal rejected",
		zap.Uint("proposal_id", proposalID),
		zap.Uint("admin_id", adminID),
		zap.String("reason", reason))

	return GetProposalByID(proposalID)
}

// TryAutoApprove approves a proposal on behalf of the system once its like
// count reaches the threshold. Invoking it redundantly, late, or against an
// already-processed proposal is a silent no-op: the conditional status
// update inside ApproveProposal guarantees at most one approval ever wins.
func TryAutoApprove(proposalID uint, likeCount int64) error {
	if likeCount < int64(autoApproveThreshold) {
		return nil
	}

	_, err := ApproveProposal(models.SystemActorID, proposalID, true)
	if errors.Is(err, ErrAlreadyProcessed) || errors.Is(err, ErrProposalNotFound) {
		return nil
	}
	return err
}
