package generator

import (
	"context"
	"strings"
	"testing"
)

func TestTemplateGenerator_ReturnsThreeIdeas(t *testing.T) {
	g := NewTemplateGenerator()

	suggestions, err := g.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("Generate() returned %d suggestions, want 3", len(suggestions))
	}

	titles := map[string]bool{}
	for _, s := range suggestions {
		if s.Title == "" || s.Description == "" {
			t.Errorf("suggestion %q missing title or description", s.Title)
		}
		if len(s.Features) == 0 || len(s.LearningOutcomes) == 0 {
			t.Errorf("suggestion %q missing features or outcomes", s.Title)
		}
		titles[s.Title] = true
	}
	if len(titles) != 3 {
		t.Errorf("expected 3 distinct titles, got %d", len(titles))
	}
}

func TestTemplateGenerator_Defaults(t *testing.T) {
	g := NewTemplateGenerator()

	suggestions, err := g.Generate(context.Background(), Profile{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, s := range suggestions {
		if s.Duration != "2-4 weeks" {
			t.Errorf("Duration = %q, want default %q", s.Duration, "2-4 weeks")
		}
		if s.Level != "Intermediate" {
			t.Errorf("Level = %q, want default %q", s.Level, "Intermediate")
		}
		if len(s.TechStack) != 3 || s.TechStack[0] != "React" {
			t.Errorf("TechStack = %v, want default stack", s.TechStack)
		}
	}
}

func TestTemplateGenerator_ProfileSubstitution(t *testing.T) {
	g := NewTemplateGenerator()

	profile := Profile{
		TechStack: []string{"Vue", "Go"},
		Duration:  "6 weeks",
		Level:     "Beginner",
	}
	suggestions, err := g.Generate(context.Background(), profile)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, s := range suggestions {
		if s.Duration != "6 weeks" {
			t.Errorf("Duration = %q, want %q", s.Duration, "6 weeks")
		}
		if s.Level != "Beginner" {
			t.Errorf("Level = %q, want %q", s.Level, "Beginner")
		}
		if strings.Join(s.TechStack, ",") != "Vue,Go" {
			t.Errorf("TechStack = %v, want profile stack", s.TechStack)
		}
	}
}
