package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

func TestGenerateSuggestions(t *testing.T) {
	env := newTestEnv(t)

	suggestions, err := env.suggest.Generate(context.Background(), generator.Profile{
		Skills:    []string{"JavaScript"},
		Level:     "Beginner",
		TechStack: []string{"Vue", "Go"},
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	for _, s := range suggestions {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.TechStack)
	}

	// Generation persists nothing.
	var count int64
	require.NoError(t, env.db.Model(&models.Suggestion{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSaveSuggestion_DefaultsToGenerated(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")

	suggestion := saveSuggestion(t, env, user.ID)
	assert.Equal(t, models.StatusGenerated, suggestion.Status)
	assert.Equal(t, user.ID, suggestion.UserID)
}

func TestSaveSuggestion_ExplicitStatus(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")

	suggestion, err := env.suggest.Save(context.Background(), &CreateSuggestionRequest{
		Title:       "Learning Tracker",
		Description: "Track study sessions",
		Status:      "in-progress",
	}, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, suggestion.Status)
}

func TestSaveSuggestion_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")

	_, err := env.suggest.Save(context.Background(), &CreateSuggestionRequest{
		Title:       "Learning Tracker",
		Description: "Track study sessions",
		Status:      "archived",
	}, user.ID)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestListMineSuggestions_ScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := registerUser(t, env, "Alice", "alice@example.com", "secret123")
	bob := registerUser(t, env, "Bob", "bob@example.com", "secret123")

	saveSuggestion(t, env, alice.ID)
	saveSuggestion(t, env, alice.ID)
	saveSuggestion(t, env, bob.ID)

	mine, err := env.suggest.ListMine(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, s := range mine {
		assert.Equal(t, alice.ID, s.UserID)
	}
}

func TestUpdateSuggestionStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")
	suggestion := saveSuggestion(t, env, user.ID)

	updated, err := env.suggest.UpdateStatus(ctx, suggestion.ID, user.ID, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.Status)

	var stored models.Suggestion
	require.NoError(t, env.db.First(&stored, suggestion.ID).Error)
	assert.Equal(t, models.StatusInProgress, stored.Status)
}

func TestUpdateSuggestionStatus_BackwardTransitionAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")
	suggestion := saveSuggestion(t, env, user.ID)

	_, err := env.suggest.UpdateStatus(ctx, suggestion.ID, user.ID, "completed")
	require.NoError(t, err)

	updated, err := env.suggest.UpdateStatus(ctx, suggestion.ID, user.ID, "generated")
	require.NoError(t, err)
	assert.Equal(t, models.StatusGenerated, updated.Status)
}

func TestUpdateSuggestionStatus_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)
	user := registerUser(t, env, "Ada", "ada@example.com", "secret123")
	suggestion := saveSuggestion(t, env, user.ID)

	_, err := env.suggest.UpdateStatus(context.Background(), suggestion.ID, user.ID, "done")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateSuggestionStatus_NotOwnerLooksLikeMissing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := registerUser(t, env, "Alice", "alice@example.com", "secret123")
	bob := registerUser(t, env, "Bob", "bob@example.com", "secret123")
	suggestion := saveSuggestion(t, env, alice.ID)

	_, notOwner := env.suggest.UpdateStatus(ctx, suggestion.ID, bob.ID, "in-progress")
	_, missing := env.suggest.UpdateStatus(ctx, 99999, alice.ID, "in-progress")

	assert.ErrorIs(t, notOwner, ErrSuggestionNotFound)
	assert.ErrorIs(t, missing, ErrSuggestionNotFound)
}
