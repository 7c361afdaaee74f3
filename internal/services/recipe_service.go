package services

import (
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SKHU-AQ-Project/aq-backend/internal/database"
	"github.com/SKHU-AQ-Project/aq-backend/internal/models"
)

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrInvalidRecipeCategory = errors.New("invalid recipe category")

const recipeCacheKey = "recipes:featured"
const recipeCacheTTL = 5 * time.Minute

// CreateRecipe stores a prompt recipe for the given author.
func CreateRecipe(authorID uint, recipe *models.Recipe) (*models.Recipe, error) {
	if !recipe.Category.Valid() {
		return nil, ErrInvalidRecipeCategory
	}

	if _, err := FindUserByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	recipe.AuthorID = authorID
	recipe.Active = true
	if recipe.Tags == nil {
		recipe.Tags = models.StringList{}
	}

	if err := database.DB.Create(recipe).Error; err != nil {
		return nil, err
	}

	invalidateRecipeCache()

	zap.L().Info("recipe created",
		zap.Uint("recipe_id", recipe.ID),
		zap.Uint("author_id", authorID))

	return recipe, nil
}

// RecipeFilter narrows and pages recipe listings.
type RecipeFilter struct {
	Category models.RecipeCategory
	Keyword  string
	AuthorID uint
	Page     int
	Limit    int
}

// FindRecipes lists active recipes, newest first.
func FindRecipes(filter RecipeFilter) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	query := database.DB.Model(&models.Recipe{}).Where("active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.AuthorID != 0 {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("created_at desc").Limit(filter.Limit).Offset(offset).Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// FindFeaturedRecipes returns the most-liked active recipes. The result is
// cached briefly in Redis since the list is on the landing page.
func FindFeaturedRecipes(limit int) ([]models.Recipe, error) {
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, recipeCacheKey).Result()
		if err == nil {
			var cached []models.Recipe
			if err := json.Unmarshal([]byte(val), &cached); err == nil && len(cached) >= limit {
				return cached[:limit], nil
			}
		}
	}

	var recipes []models.Recipe
	if err := database.DB.Where("active = ?", true).
		Order("like_count desc, created_at desc").
		Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(recipes); err == nil {
			database.RedisClient.Set(database.Ctx, recipeCacheKey, data, recipeCacheTTL)
		}
	}

	return recipes, nil
}

// GetRecipe fetches one recipe and counts the view.
func GetRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := database.DB.Where("active = ?", true).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	database.DB.Model(&recipe).UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	recipe.ViewCount++

	return &recipe, nil
}

// UpdateRecipe lets the author revise their recipe.
func UpdateRecipe(id, userID uint, updates map[string]interface{}) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := database.DB.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if recipe.AuthorID != userID {
		return nil, ErrForbidden
	}

	if category, ok := updates["category"].(models.RecipeCategory); ok && !category.Valid() {
		return nil, ErrInvalidRecipeCategory
	}

	if err := database.DB.Model(&recipe).Updates(updates).Error; err != nil {
		return nil, err
	}

	invalidateRecipeCache()

	database.DB.First(&recipe, id)
	return &recipe, nil
}

// DeleteRecipe soft-deletes: the row goes inactive but the toggle ledger
// entries pointing at it are kept.
func DeleteRecipe(id, userID uint) error {
	var recipe models.Recipe
	if err := database.DB.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID != userID {
		return ErrForbidden
	}

	if err := database.DB.Model(&recipe).UpdateColumn("active", false).Error; err != nil {
		return err
	}

	invalidateRecipeCache()

	zap.L().Info("recipe deleted", zap.Uint("recipe_id", id), zap.Uint("user_id", userID))
	return nil
}

func invalidateRecipeCache() {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, recipeCacheKey)
	}
}
