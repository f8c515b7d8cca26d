package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err is a missing-record error from any
// repository.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// Write methods accept an optional transaction handle (nil means the
// repository's own connection) so services can group multi-entity writes.

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type OtpRepository interface {
	Create(ctx context.Context, code *models.OneTimeCode) error
	// FindMatch returns the most recent unused code matching
	// (email, code, purpose) regardless of expiry; expiry is checked by the
	// caller so expired and absent codes produce distinct errors.
	FindMatch(ctx context.Context, email, code string, purpose models.OtpPurpose) (*models.OneTimeCode, error)
	MarkUsed(ctx context.Context, tx *gorm.DB, id uint) error
}

type SuggestionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, suggestion *models.Suggestion) error
	// GetOwned returns the suggestion only when it belongs to userID;
	// a missing row and a non-owned row are both ErrNotFound.
	GetOwned(ctx context.Context, id, userID uint) (*models.Suggestion, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Suggestion, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uint, status models.SuggestionStatus) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error
}

type SubmissionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, submission *models.Submission) error
	GetByID(ctx context.Context, id uint) (*models.Submission, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Submission, error)
	ListAll(ctx context.Context) ([]*models.Submission, error)
	UpdateReview(ctx context.Context, tx *gorm.DB, id uint, review models.AdminReview) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uint) error
}

// DashboardRepository serves the admin aggregation views. Counts are
// computed with join-and-count queries, never denormalized counters.
type DashboardRepository interface {
	ListUsersWithCounts(ctx context.Context) ([]*models.User, error)
}
