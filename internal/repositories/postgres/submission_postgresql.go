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

type SubmissionPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewSubmissionPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.SubmissionRepository {
	return &SubmissionPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

func (r *SubmissionPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *SubmissionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	if err := r.getDB(tx).WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	r.invalidate(ctx, submission.UserID)
	return nil
}

func (r *SubmissionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.WithContext(ctx).
		Preload("Suggestion").
		First(&submission, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &submission, nil
}

func (r *SubmissionPostgreSQL) ListByUser(ctx context.Context, userID uint) ([]*models.Submission, error) {
	cacheKey := fmt.Sprintf("user:%d:list", userID)
	var submissions []*models.Submission

	err := r.cacheManager.Submission.CacheOrExecute(ctx, cacheKey, &submissions, cache.SubmissionCacheConfig.TTL, func() (interface{}, error) {
		var list []*models.Submission
		if err := r.db.WithContext(ctx).
			Preload("Suggestion").
			Where("user_id = ?", userID).
			Order("submitted_at DESC").
			Find(&list).Error; err != nil {
			return nil, fmt.Errorf("failed to list submissions: %w", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

// ListAll returns every submission with its suggestion and owning user
// loaded, newest first. The handler reduces the user to name/email.
func (r *SubmissionPostgreSQL) ListAll(ctx context.Context) ([]*models.Submission, error) {
	var submissions []*models.Submission
	if err := r.db.WithContext(ctx).
		Preload("Suggestion").
		Preload("User").
		Order("submitted_at DESC").
		Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to list all submissions: %w", err)
	}

	for _, s := range submissions {
		if s.User != nil {
			owner := s.User.Public()
			s.Owner = &owner
		}
	}
	return submissions, nil
}

// UpdateReview replaces the embedded review wholesale. The caller has
// already decided the badge URL (kept or overwritten), so every column is
// written.
func (r *SubmissionPostgreSQL) UpdateReview(ctx context.Context, tx *gorm.DB, id uint, review models.AdminReview) error {
	result := r.getDB(tx).WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"review_rating":             review.Rating,
			"review_badge":              review.Badge,
			"review_completion_percent": review.CompletionPercent,
			"review_comments":           review.Comments,
			"review_badge_file_url":     review.BadgeFileURL,
			"review_reviewed_at":        review.ReviewedAt,
			"review_reviewed_by":        review.ReviewedBy,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Submission, "user:*")
	return nil
}

func (r *SubmissionPostgreSQL) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error {
	if err := r.getDB(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Submission{}).Error; err != nil {
		return fmt.Errorf("failed to delete submissions: %w", err)
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *SubmissionPostgreSQL) invalidate(ctx context.Context, userID uint) {
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Submission, fmt.Sprintf("user:%d:*", userID))
	cache.SafeInvalidatePattern(ctx, r.cacheManager.Stats, "*")
}
