package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrModelNotFound = errors.New("AI model not found")

// AIModelFilter narrows and pages catalog listings.
type AIModelFilter struct {
	Keyword    string
	Category   models.ModelCategory
	OnlyActive bool
	Page       int
	Limit      int
}

// FindAIModels retrieves a paginated list of catalog models with filtering.
func FindAIModels(filter AIModelFilter) ([]models.AIModel, int64, error) {
	var aiModels []models.AIModel
	var total int64

	query := database.DB.Model(&models.AIModel{})

	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR provider LIKE ? OR description LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&aiModels).Error; err != nil {
		return nil, 0, err
	}

	return aiModels, total, nil
}

func GetAIModelByID(id uint) (*models.AIModel, error) {
	var model models.AIModel
	if err := database.DB.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}
	return &model, nil
}

// SetModelActive activates or deactivates a catalog model. Admin only;
// deactivated models stop accepting reviews and update requests.
func SetModelActive(adminID, modelID uint, active bool) (*models.AIModel, error) {
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

	res := database.DB.Model(&models.AIModel{}).Where("id = ?", modelID).
		UpdateColumn("active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrModelNotFound
	}

	zap.L().Info("model active flag changed",
		zap.Uint("model_id", modelID),
		zap.Bool("active", active),
		zap.Uint("admin_id", adminID))

	return GetAIModelByID(modelID)
}
