// Package generator produces project-idea records from a user profile.
//
// The template generator is the primary implementation: deterministic, pure
// and side-effect free. An external OpenAI-compatible generator can be
// enabled by configuration; it always falls back to the templates when the
// upstream call fails or returns an unparseable response, so generation
// never surfaces an upstream error to the caller.
package generator

import (
	"context"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

// Profile is the user-supplied input to generation. Nothing here is
// persisted; generation has no side effects.
type Profile struct {
	Skills    []string `json:"skills"`
	Level     string   `json:"level"`
	Interests []string `json:"interests"`
	TechStack []string `json:"tech_stack"`
	Duration  string   `json:"duration"`
	Goal      string   `json:"goal"`
}

// Generator produces 2-3 candidate project ideas for a profile.
type Generator interface {
	Generate(ctx context.Context, profile Profile) ([]models.GeneratedSuggestion, error)
}
