package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type suggestionService struct {
	repo      repositories.Repository
	gen       generator.Generator
	logger    *slog.Logger
	validator *validator.Validator
}

func NewSuggestionService(
	repo repositories.Repository,
	gen generator.Generator,
	logger *slog.Logger,
	v *validator.Validator,
) SuggestionService {
	return &suggestionService{repo: repo, gen: gen, logger: logger, validator: v}
}

// Generate produces candidate project ideas from the student's profile.
// Nothing is persisted; the caller saves the ideas it wants to keep.
func (s *suggestionService) Generate(ctx context.Context, profile generator.Profile) ([]models.GeneratedSuggestion, error) {
	suggestions, err := s.gen.Generate(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}
	s.logger.Info("suggestions generated", "count", len(suggestions))
	return suggestions, nil
}

// Save persists a suggestion for the calling user. An omitted status
// defaults to generated.
func (s *suggestionService) Save(ctx context.Context, req *CreateSuggestionRequest, userID uint) (*models.Suggestion, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	status := models.StatusGenerated
	if req.Status != "" {
		validated, errs := s.validator.GetBusinessValidator().ValidateStatus(req.Status)
		if len(errs) > 0 {
			return nil, errs
		}
		status = validated
	}

	suggestion := &models.Suggestion{
		UserID:            userID,
		Title:             req.Title,
		Description:       req.Description,
		TechStack:         req.TechStack,
		Features:          req.Features,
		LearningOutcomes:  req.LearningOutcomes,
		SetupInstructions: req.SetupInstructions,
		Duration:          req.Duration,
		Level:             req.Level,
		Status:            status,
	}

	if err := s.repo.Suggestion().Create(ctx, nil, suggestion); err != nil {
		return nil, fmt.Errorf("failed to save suggestion: %w", err)
	}

	s.logger.Info("suggestion saved", "suggestion_id", suggestion.ID, "user_id", userID)
	return suggestion, nil
}

func (s *suggestionService) ListMine(ctx context.Context, userID uint) ([]*models.Suggestion, error) {
	suggestions, err := s.repo.Suggestion().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

// UpdateStatus moves a suggestion to any valid status. Ownership is
// enforced at lookup time, so a suggestion belonging to another user is
// indistinguishable from a missing one.
func (s *suggestionService) UpdateStatus(ctx context.Context, id, userID uint, status string) (*models.Suggestion, error) {
	validated, errs := s.validator.GetBusinessValidator().ValidateStatus(status)
	if len(errs) > 0 {
		return nil, errs
	}

	suggestion, err := s.repo.Suggestion().GetOwned(ctx, id, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to load suggestion: %w", err)
	}

	if err := s.repo.Suggestion().UpdateStatus(ctx, nil, suggestion.ID, validated); err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}
	suggestion.Status = validated

	s.logger.Info("suggestion status updated",
		"suggestion_id", suggestion.ID, "user_id", userID, "status", validated)
	return suggestion, nil
}
