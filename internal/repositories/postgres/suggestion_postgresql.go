package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/cache"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
)

type SuggestionPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewSuggestionPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.SuggestionRepository {
	return &SuggestionPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *SuggestionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *SuggestionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, suggestion *models.Suggestion) error {
	if err := r.getDB(tx).WithContext(ctx).Create(suggestion).Error; err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Suggestion, fmt.Sprintf("user:%d:*", suggestion.UserID))
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Stats, "*")
	return nil
}

// GetOwned scopes the lookup to the owning user so a non-owned suggestion
// is indistinguishable from an absent one.
func (r *SuggestionPostgreSQL) GetOwned(ctx context.Context, id, userID uint) (*models.Suggestion, error) {
	var suggestion models.Suggestion
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&suggestion).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &suggestion, nil
}

func (r *SuggestionPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Suggestion, error) {
	cacheKey := fmt.Sprintf("user:%d:list", userID)
	var suggestions []*models.Suggestion

	err := r.cacheManager.Suggestion.CacheOrExecute(ctx, cacheKey, &suggestions, cache.SuggestionCacheConfig.TTL, func() (interface{}, error) {
		var list []*models.Suggestion
		if err := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&list).Error; err != nil {
			return nil, fmt.Errorf("failed to list suggestions: %w", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *SuggestionPostgreSQL) UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.SuggestionStatus) error {
	result := r.getDB(tx).WithContext(ctx).
		Model(&models.Suggestion{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update suggestion status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Suggestion, "user:*")
	return nil
}

func (r *SuggestionPostgreSQL) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error {
	if err := r.getDB(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Suggestion{}).Error; err != nil {
		return fmt.Errorf("failed to delete suggestions: %w", err)
	}
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Suggestion, fmt.Sprintf("user:%d:*", userID))
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Stats, "*")
	return nil
}
