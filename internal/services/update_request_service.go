package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrUpdateRequestNotFound = errors.New("update request not found")
var ErrModelInactive = errors.New("cannot request updates to an inactive model")

// CreateUpdateRequest queues a proposed edit against an existing, active
// catalog model. Requests against deactivated models are refused at
// submission, not parked in the pending queue.
func CreateUpdateRequest(userID uint, request *models.ModelUpdateRequest) (*models.ModelUpdateRequest, error) {
	if _, err := FindUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var model models.AIModel
	if err := database.DB.First(&model, request.ModelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	if !model.Active {
		return nil, ErrModelInactive
	}

	request.UserID = userID
	request.Status = models.UpdateRequestStatusPending

	if err := database.DB.Create(request).Error; err != nil {
		return nil, err
	}

	zap.L().Info("model update request created",
		zap.Uint("request_id", request.ID),
		zap.Uint("model_id", request.ModelID),
		zap.Uint("user_id", userID))

	return request, nil
}

// FindUpdateRequests retrieves a paginated list of update requests with the
// given status.
func FindUpdateRequests(status models.UpdateRequestStatus, page, limit int) ([]models.ModelUpdateRequest, int64, error) {
	var requests []models.ModelUpdateRequest
	var total int64

	query := database.DB.Model(&models.ModelUpdateRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at asc").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func GetUpdateRequestByID(id uint) (*models.ModelUpdateRequest, error) {
	var request models.ModelUpdateRequest
	if err := database.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// ProcessUpdateRequest settles a pending update request. Approval patches
// only the fields the submitter actually supplied onto the live model; nil
// diff fields never overwrite existing values. Rejection leaves the model
// untouched. Either way the status flip is a conditional update, so a
// request is settled exactly once.
func ProcessUpdateRequest(adminID, requestID uint, approve bool) (*models.ModelUpdateRequest, error) {
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

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var request models.ModelUpdateRequest
	if err := tx.First(&request, requestID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUpdateRequestNotFound
		}
		return nil, err
	}

	status := models.UpdateRequestStatusRejected
	if approve {
		status = models.UpdateRequestStatusApproved
	}

	res := tx.Model(&models.ModelUpdateRequest{}).
		Where("id = ? AND status = ?", requestID, models.UpdateRequestStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_by": adminID,
			"processed_at": time.Now(),
		})
	if res.Error != nil {
		tx.Rollback()
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrAlreadyProcessed
	}

	if approve {
		updates := updateRequestPatch(&request)
		if len(updates) > 0 {
			if err := tx.Model(&models.AIModel{}).Where("id = ?", request.ModelID).
				Updates(updates).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	zap.L().Info("model update request processed",
		zap.Uint("request_id", requestID),
		zap.Uint("admin_id", adminID),
		zap.Bool("approved", approve))

	return GetUpdateRequestByID(requestID)
}

// updateRequestPatch collects the non-nil diff fields as a column update map.
func updateRequestPatch(request *models.ModelUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}

	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Category != nil {
		updates["category"] = *request.Category
	}
	// Capabilities round-trips through the DB as an empty JSON array when the
	// submitter left it out, so empty means "not supplied" here.
	if len(request.Capabilities) > 0 {
		updates["capabilities"] = request.Capabilities
	}
	if request.InputPricePerToken != nil {
		updates["input_price_per_token"] = *request.InputPricePerToken
	}
	if request.OutputPricePerToken != nil {
		updates["output_price_per_token"] = *request.OutputPricePerToken
	}
	if request.MaxTokens != nil {
		updates["max_tokens"] = *request.MaxTokens
	}
	if request.HasFreeTier != nil {
		updates["has_free_tier"] = *request.HasFreeTier
	}
	if request.APIEndpoint != nil {
		updates["api_endpoint"] = *request.APIEndpoint
	}
	if request.DocumentationURL != nil {
		updates["documentation_url"] = *request.DocumentationURL
	}

	return updates
}
