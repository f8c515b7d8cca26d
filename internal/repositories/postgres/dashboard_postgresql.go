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

type DashboardPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewDashboardPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.DashboardRepository {
	return &DashboardPostgreSQL{
		db:           db,
		cacheManager: cache.NewCacheManager(redisClient),
	}
}

// ListUsersWithCounts returns all users with their suggestion and submission
// counts computed by correlated subqueries, so the listing is always
// consistent with the underlying rows.
func (r *DashboardPostgreSQL) ListUsersWithCounts(ctx context.Context) ([]*models.User, error) {
	cacheKey := "users:counts"
	var users []*models.User

	err := r.cacheManager.Stats.CacheOrExecute(ctx, cacheKey, &users, cache.StatsCacheConfig.TTL, func() (interface{}, error) {
		var list []*models.User
		err := r.db.WithContext(ctx).
			Model(&models.User{}).
			Select(`users.*,
				(SELECT COUNT(*) FROM suggestions WHERE suggestions.user_id = users.id) AS suggestion_count,
				(SELECT COUNT(*) FROM submissions WHERE submissions.user_id = users.id) AS submission_count`).
			Order("users.created_at DESC").
			Find(&list).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list users with counts: %w", err)
		}
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
