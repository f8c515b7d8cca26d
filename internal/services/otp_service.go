package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
)

const (
	otpLength   = 6
	otpValidity = 10 * time.Minute
)

type otpService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewOtpService(repo repositories.Repository, logger *slog.Logger) OtpService {
	return &otpService{repo: repo, logger: logger}
}

// Issue creates and stores a fresh code. Previously issued codes for the
// same email stay valid; a new request does not invalidate them.
func (s *otpService) Issue(ctx context.Context, email string, purpose models.OtpPurpose) (*models.OneTimeCode, error) {
	code, err := generateNumericCode(otpLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	otp := &models.OneTimeCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(otpValidity),
	}

	if err := s.repo.Otp().Create(ctx, otp); err != nil {
		return nil, err
	}

	s.logger.Info("one-time code issued", "email", email, "purpose", purpose)
	return otp, nil
}

// Verify requires an exact (email, code, purpose, unused) match and rejects
// expired-but-unused codes with ErrOtpExpired.
func (s *otpService) Verify(ctx context.Context, email, code string, purpose models.OtpPurpose) (*models.OneTimeCode, error) {
	otp, err := s.repo.Otp().FindMatch(ctx, email, code, purpose)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidOtp
		}
		return nil, fmt.Errorf("failed to look up code: %w", err)
	}

	if otp.IsExpired(time.Now()) {
		return nil, ErrOtpExpired
	}

	return otp, nil
}

// Consume marks a verified code used. A second consumption of the same id
// fails, making verification idempotent at most once.
func (s *otpService) Consume(ctx context.Context, id uint) error {
	if err := s.repo.Otp().MarkUsed(ctx, nil, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrInvalidOtp
		}
		return err
	}
	return nil
}

// generateNumericCode returns a crypto-random string of n decimal digits.
func generateNumericCode(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
