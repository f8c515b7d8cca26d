package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type submissionService struct {
	db        *gorm.DB
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSubmissionService(
	db *gorm.DB,
	repo repositories.Repository,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) SubmissionService {
	return &submissionService{db: db, repo: repo, publisher: publisher, logger: logger, validator: v}
}

// Create records a project submission against one of the caller's own
// suggestions and marks that suggestion completed in the same transaction.
func (s *submissionService) Create(ctx context.Context, req *CreateSubmissionRequest, userID uint) (*models.Submission, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	suggestion, err := s.repo.Suggestion().GetOwned(ctx, req.SuggestionID, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to load suggestion: %w", err)
	}

	submission := &models.Submission{
		UserID:       userID,
		SuggestionID: suggestion.ID,
		GithubLink:   req.GithubLink,
		FrontendURL:  req.FrontendURL,
		BackendURL:   req.BackendURL,
		VideoURL:     req.VideoURL,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Submission().Create(ctx, tx, submission); err != nil {
			return fmt.Errorf("failed to create submission: %w", err)
		}
		if err := s.repo.Suggestion().UpdateStatus(ctx, tx, suggestion.ID, models.StatusCompleted); err != nil {
			return fmt.Errorf("failed to complete suggestion: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("submission created",
		"submission_id", submission.ID, "suggestion_id", suggestion.ID, "user_id", userID)
	s.publishEvent(ctx, events.TypeSubmissionCreated, events.SubmissionEvent{
		SubmissionID: submission.ID,
		SuggestionID: suggestion.ID,
		UserID:       userID,
	})

	suggestion.Status = models.StatusCompleted
	submission.Suggestion = suggestion
	return submission, nil
}

func (s *submissionService) ListMine(ctx context.Context, userID uint) ([]*models.Submission, error) {
	submissions, err := s.repo.Submission().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

func (s *submissionService) ListAll(ctx context.Context) ([]*models.Submission, error) {
	submissions, err := s.repo.Submission().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, nil
}

// Review upserts the admin review on a submission. There is one review per
// submission; reviewing again replaces the previous values. A review
// without a new badge file keeps the previously stored one.
func (s *submissionService) Review(ctx context.Context, submissionID, adminID uint, values validator.ReviewValues, badgeFileURL string) (*models.Submission, error) {
	submission, err := s.repo.Submission().GetByID(ctx, submissionID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to load submission: %w", err)
	}

	now := time.Now()
	review := models.AdminReview{
		Rating:            values.Rating,
		Badge:             values.Badge,
		Comments:          values.Comments,
		CompletionPercent: values.CompletionPercent,
		BadgeFileURL:      submission.AdminReview.BadgeFileURL,
		ReviewedAt:        &now,
		ReviewedBy:        &adminID,
	}
	if badgeFileURL != "" {
		review.BadgeFileURL = badgeFileURL
	}

	if err := s.repo.Submission().UpdateReview(ctx, nil, submission.ID, review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	submission.AdminReview = review

	s.logger.Info("submission reviewed",
		"submission_id", submission.ID, "admin_id", adminID, "rating", review.Rating)
	s.publishEvent(ctx, events.TypeSubmissionReviewed, events.SubmissionEvent{
		SubmissionID: submission.ID,
		SuggestionID: submission.SuggestionID,
		UserID:       submission.UserID,
		ReviewedBy:   &adminID,
	})

	return submission, nil
}

func (s *submissionService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}
