package events

import (
	"time"
)

const (
	// Source identifies this service in every published event.
	Source  = "portfolio-service"
	Version = "1.0"
)

// Event types published by the service.
const (
	TypeOtpIssued          = "auth.otp_issued"
	TypeUserRegistered     = "auth.user_registered"
	TypeSubmissionCreated  = "submission.created"
	TypeSubmissionReviewed = "submission.reviewed"
	TypeUserDeleted        = "admin.user_deleted"
)

// Event is the envelope for all notification events.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// SubmissionEvent is the payload for submission lifecycle events.
type SubmissionEvent struct {
	SubmissionID uint `json:"submission_id"`
	SuggestionID uint `json:"suggestion_id"`
	UserID       uint `json:"user_id"`
	// ReviewedBy is set only for submission.reviewed events.
	ReviewedBy *uint `json:"reviewed_by,omitempty"`
}

// OtpEvent is the payload for auth.otp_issued. The raw code is never
// published; only the destination and purpose are.
type OtpEvent struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

// UserEvent is the payload for user registration and deletion events.
type UserEvent struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
