package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
)

type OtpPostgreSQL struct {
	db *gorm.DB
}

func NewOtpPostgreSQL(db *gorm.DB) repositories.OtpRepository {
	return &OtpPostgreSQL{db: db}
}

func (r *OtpPostgreSQL) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *OtpPostgreSQL) Create(ctx context.Context, code *models.OneTimeCode) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return fmt.Errorf("failed to create one-time code: %w", err)
	}
	return nil
}

func (r *OtpPostgreSQL) FindMatch(ctx context.Context, email, code string, purpose models.OtpPurpose) (*models.OneTimeCode, error) {
	var otp models.OneTimeCode
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND purpose = ? AND used = false", email, code, purpose).
		Order("created_at DESC").
		First(&otp).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &otp, nil
}

func (r *OtpPostgreSQL) MarkUsed(ctx context.Context, tx *gorm.DB, id uint) error {
	result := r.getDB(tx).WithContext(ctx).
		Model(&models.OneTimeCode{}).
		Where("id = ? AND used = false", id).
		Update("used", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark code used: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Already consumed by a concurrent verification.
		return repositories.ErrNotFound
	}
	return nil
}
