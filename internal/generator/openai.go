package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

// OpenAIGenerator builds a structured prompt, makes a single chat-completion
// call and parses a JSON array of ideas out of the response. On any upstream
// or parse failure it falls back to the template generator instead of
// surfacing the error.
type OpenAIGenerator struct {
	client   *openai.Client
	model    string
	fallback Generator
	logger   *slog.Logger
}

func NewOpenAIGenerator(cfg config.GeneratorConfig, fallback Generator, logger *slog.Logger) *OpenAIGenerator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIGenerator{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		fallback: fallback,
		logger:   logger,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, profile Profile) ([]models.GeneratedSuggestion, error) {
	suggestions, err := g.generateExternal(ctx, profile)
	if err != nil {
		g.logger.Warn("external generation failed, using templates", "error", err)
		return g.fallback.Generate(ctx, profile)
	}
	return suggestions, nil
}

func (g *OpenAIGenerator) generateExternal(ctx context.Context, profile Profile) ([]models.GeneratedSuggestion, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You generate student project ideas. Respond with a JSON array of 2 or 3 " +
					"objects with keys: title, description, tech_stack (array), features (array), " +
					"learning_outcomes (array), setup_instructions, duration, level. No prose.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(profile),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	suggestions, err := parseSuggestions(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func buildPrompt(profile Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(profile.Skills, ", "))
	fmt.Fprintf(&b, "Level: %s\n", profile.Level)
	fmt.Fprintf(&b, "Interests: %s\n", strings.Join(profile.Interests, ", "))
	fmt.Fprintf(&b, "Preferred tech stack: %s\n", strings.Join(profile.TechStack, ", "))
	fmt.Fprintf(&b, "Available time: %s\n", profile.Duration)
	fmt.Fprintf(&b, "Goal: %s\n", profile.Goal)
	return b.String()
}

// parseSuggestions extracts a JSON array from the model output, tolerating
// surrounding markdown fences or prose.
func parseSuggestions(content string) ([]models.GeneratedSuggestion, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("response contains no JSON array")
	}

	var suggestions []models.GeneratedSuggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	if len(suggestions) < 2 || len(suggestions) > 3 {
		return nil, fmt.Errorf("expected 2-3 suggestions, got %d", len(suggestions))
	}
	return suggestions, nil
}
