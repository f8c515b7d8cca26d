package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

// TemplateGenerator substitutes profile fields into three fixed idea
// templates. It always returns exactly three suggestions and never fails.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, profile Profile) ([]models.GeneratedSuggestion, error) {
	stack := profile.TechStack
	if len(stack) == 0 {
		stack = []string{"React", "Node.js", "PostgreSQL"}
	}
	stackStr := strings.Join(stack, ", ")

	duration := profile.Duration
	if duration == "" {
		duration = "2-4 weeks"
	}

	level := profile.Level
	if level == "" {
		level = "Intermediate"
	}

	portfolioHub := models.GeneratedSuggestion{
		Title: "Personal Project Portfolio Hub",
		Description: "A full-stack portfolio application where you can add, manage, and showcase " +
			"all your projects with live demos, tech stack, and case-study style writeups.",
		TechStack: stack,
		SetupInstructions: "Create a frontend with your chosen framework, a backend API layer, " +
			"and a database for project entries, then connect them via REST APIs.",
		Features: []string{
			"Authentication (login / register)",
			"Add / edit / delete project entries",
			"Project categories & filtering",
			"Public portfolio page with shareable URL",
			"Admin view to manage all projects",
		},
		LearningOutcomes: []string{
			fmt.Sprintf("Hands-on practice with %s", stackStr),
			"Implementing authentication and protected routes",
			"Designing REST APIs and data models",
			"Building a clean, responsive UI",
		},
		Duration: duration,
		Level:    level,
	}

	learningTracker := models.GeneratedSuggestion{
		Title: "Student Learning Tracker",
		Description: "A platform where students can track their daily learning, topics completed, " +
			"and upcoming goals, with progress dashboards.",
		TechStack: stack,
		SetupInstructions: "Build a dashboard frontend, an API layer, and a database for storing " +
			"logs and milestones.",
		Features: []string{
			"User authentication (student login)",
			"Daily/weekly learning logs",
			"Progress charts (per skill/subject)",
			"Goal setting and reminders",
			"Admin view to see all students and their progress",
		},
		LearningOutcomes: []string{
			"Modeling relational data (user, logs, goals)",
			"Implementing charts and graphs on the frontend",
			"Improving UX for data-heavy dashboards",
		},
		Duration: duration,
		Level:    level,
	}

	ideaGenerator := models.GeneratedSuggestion{
		Title: "AI-Powered Project Idea Generator",
		Description: "A web app where users enter their skills, interests, and time, and the system " +
			"suggests project ideas and tracks which ones they start or complete.",
		TechStack: stack,
		SetupInstructions: "Build forms to collect skills and interests, store saved suggestions per " +
			"user, and provide a dashboard to track chosen ideas.",
		Features: []string{
			"Form to collect skills, interests, tech stack preferences",
			"Suggestion list saved per user",
			"Mark suggestion as in-progress / completed",
			"Submit GitHub / live URLs for completed projects",
			"Admin panel to review and rate projects",
		},
		LearningOutcomes: []string{
			"Designing a full flow: from idea generation to submission and review",
			"Working with user-specific data and roles (user vs admin)",
			"Structuring a clean multi-page frontend flow",
		},
		Duration: duration,
		Level:    level,
	}

	return []models.GeneratedSuggestion{portfolioHub, learningTracker, ideaGenerator}, nil
}
