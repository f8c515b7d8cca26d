package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
)

type adminService struct {
	db        *gorm.DB
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewAdminService(
	db *gorm.DB,
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
) AdminService {
	return &adminService{db: db, repo: repo, publisher: publisher, logger: logger}
}

// ListUsers returns every account with its suggestion and submission counts.
func (s *adminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.Dashboard().ListUsersWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UserSummary returns one user together with all of their suggestions and
// submissions.
func (s *adminService) UserSummary(ctx context.Context, userID uint) (*UserSummary, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	suggestions, err := s.repo.Suggestion().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}
	submissions, err := s.repo.Submission().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}

	return &UserSummary{User: user, Suggestions: suggestions, Submissions: submissions}, nil
}

// DeleteUser removes a user and everything they own in one transaction.
// Admin accounts cannot be deleted through this path.
func (s *adminService) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	target, err := s.repo.User().GetByID(ctx, targetID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if target.Role == models.RoleAdmin {
		return NewPermissionError(actorID, targetID, "user", "delete", "admin accounts cannot be deleted")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Submission().DeleteByUser(ctx, tx, targetID); err != nil {
			return fmt.Errorf("failed to delete submissions: %w", err)
		}
		if err := s.repo.Suggestion().DeleteByUser(ctx, tx, targetID); err != nil {
			return fmt.Errorf("failed to delete suggestions: %w", err)
		}
		if err := s.repo.User().Delete(ctx, tx, targetID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user deleted", "target_id", targetID, "actor_id", actorID)
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.TypeUserDeleted, events.UserEvent{
			UserID: targetID,
			Email:  target.Email,
		}); err != nil {
			s.logger.Warn("failed to publish event", "type", events.TypeUserDeleted, "error", err)
		}
	}
	return nil
}

// ExportUsers renders the user dashboard as an xlsx workbook.
func (s *adminService) ExportUsers(ctx context.Context) ([]byte, error) {
	users, err := s.repo.Dashboard().ListUsersWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"ID", "Name", "Email", "Role", "Verified", "Suggestions", "Submissions", "Registered"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, user := range users {
		values := []interface{}{
			user.ID,
			user.Name,
			user.Email,
			string(user.Role),
			strconv.FormatBool(user.IsVerified),
			user.SuggestionCount,
			user.SubmissionCount,
			user.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	s.logger.Info("user export generated", "users", len(users))
	return buf.Bytes(), nil
}
