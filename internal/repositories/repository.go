package repositories

import "context"

// Repository aggregates all per-domain repository interfaces.
type Repository interface {
	User() UserRepository
	Otp() OtpRepository
	Suggestion() SuggestionRepository
	Submission() SubmissionRepository
	Dashboard() DashboardRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
