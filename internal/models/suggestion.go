package models

import (
	"time"

	"gorm.io/datatypes"
)

type SuggestionStatus string

const (
	StatusGenerated  SuggestionStatus = "generated"
	StatusInProgress SuggestionStatus = "in-progress"
	StatusCompleted  SuggestionStatus = "completed"
)

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case StatusGenerated, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Suggestion is a project idea a user chose to keep or start. Ideas returned
// by the generator are ephemeral; a row exists only after an explicit save.
type Suggestion struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;index"`

	Title            string                       `json:"title" gorm:"not null;size:200"`
	Description      string                       `json:"description" gorm:"not null;type:text"`
	TechStack        datatypes.JSONSlice[string]  `json:"tech_stack"`
	Features         datatypes.JSONSlice[string]  `json:"features"`
	LearningOutcomes datatypes.JSONSlice[string]  `json:"learning_outcomes"`
	SetupInstructions string                      `json:"setup_instructions" gorm:"type:text"`
	Duration         string                       `json:"duration" gorm:"size:50"`
	Level            string                       `json:"level" gorm:"size:50"`

	Status SuggestionStatus `json:"status" gorm:"not null;size:20;default:generated;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}

// GeneratedSuggestion is the ephemeral generator output. It mirrors the
// persistable fields of Suggestion but carries no id, owner or status.
type GeneratedSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	TechStack         []string `json:"tech_stack"`
	Features          []string `json:"features"`
	LearningOutcomes  []string `json:"learning_outcomes"`
	SetupInstructions string   `json:"setup_instructions"`
	Duration          string   `json:"duration"`
	Level             string   `json:"level"`
}
