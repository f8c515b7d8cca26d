package services

import (
	"context"

	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Request DTOs live in the validator package so tag validation happens at
// the boundary.
type RegisterRequest = validator.RegisterVerifyRequest
type LoginRequest = validator.LoginRequest
type ResetPasswordRequest = validator.ResetPasswordRequest
type CreateSuggestionRequest = validator.CreateSuggestionRequest
type CreateSubmissionRequest = validator.CreateSubmissionRequest

// AuthResponse is returned by every successful authentication path.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// OtpResponse acknowledges an OTP request. DevOtp carries the raw code only
// outside production so the flow stays testable when mail delivery fails.
type OtpResponse struct {
	Message string `json:"message"`
	DevOtp  string `json:"devOtp,omitempty"`
}

// UserSummary is the admin per-user detail view.
type UserSummary struct {
	User        *models.User         `json:"user"`
	Suggestions []*models.Suggestion `json:"suggestions"`
	Submissions []*models.Submission `json:"submissions"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	RequestRegisterOtp(ctx context.Context, email string) (*OtpResponse, error)
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, rawIDToken string) (*AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) (*OtpResponse, error)
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
}

type OtpService interface {
	Issue(ctx context.Context, email string, purpose models.OtpPurpose) (*models.OneTimeCode, error)
	// Verify returns the matched unexpired, unused code without consuming
	// it; Consume marks it used exactly once.
	Verify(ctx context.Context, email, code string, purpose models.OtpPurpose) (*models.OneTimeCode, error)
	Consume(ctx context.Context, id uint) error
}

type SuggestionService interface {
	Generate(ctx context.Context, profile generator.Profile) ([]models.GeneratedSuggestion, error)
	Save(ctx context.Context, req *CreateSuggestionRequest, userID uint) (*models.Suggestion, error)
	ListMine(ctx context.Context, userID uint) ([]*models.Suggestion, error)
	UpdateStatus(ctx context.Context, id, userID uint, status string) (*models.Suggestion, error)
}

type SubmissionService interface {
	Create(ctx context.Context, req *CreateSubmissionRequest, userID uint) (*models.Submission, error)
	ListMine(ctx context.Context, userID uint) ([]*models.Submission, error)
	ListAll(ctx context.Context) ([]*models.Submission, error)
	Review(ctx context.Context, submissionID, adminID uint, values validator.ReviewValues, badgeFileURL string) (*models.Submission, error)
}

type AdminService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	UserSummary(ctx context.Context, userID uint) (*UserSummary, error)
	DeleteUser(ctx context.Context, actorID, targetID uint) error
	ExportUsers(ctx context.Context) ([]byte, error)
}

// ServiceManager wires and exposes all services.
type ServiceManager interface {
	Auth() AuthService
	Otp() OtpService
	Suggestion() SuggestionService
	Submission() SubmissionService
	Admin() AdminService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
