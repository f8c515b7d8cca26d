package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/mailer"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories/postgres"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

const testSecret = "test-secret-at-least-16-chars!!"

// testEnv wires the full service stack against an in-memory database with
// no Redis, no SMTP and the template generator.
type testEnv struct {
	db        *gorm.DB
	repo      repositories.Repository
	cfg       *config.Config
	auth      AuthService
	otp       OtpService
	suggest   SuggestionService
	submit    SubmissionService
	admin     AdminService
	mailer    *mailer.NoopMailer
	publisher *events.MockEventPublisher
	tokens    *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.OneTimeCode{},
		&models.Suggestion{},
		&models.Submission{},
	))

	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validator.New()

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			Secret:         testSecret,
			Issuer:         "portfolio-service",
			TokenTTL:       30 * 24 * time.Hour,
			GoogleTokenTTL: 24 * time.Hour,
		},
	}

	tokens, err := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	require.NoError(t, err)
	passwords := auth.NewPasswordServiceWithCost(bcrypt.MinCost)
	noopMailer := &mailer.NoopMailer{}
	publisher := events.NewMockEventPublisher(logger)

	otpSvc := NewOtpService(repo, logger)
	authSvc := NewAuthService(repo, otpSvc, tokens, passwords,
		auth.NewGoogleVerifier(""), noopMailer, publisher, cfg, logger, v)
	suggestSvc := NewSuggestionService(repo, generator.NewTemplateGenerator(), logger, v)
	submitSvc := NewSubmissionService(db, repo, publisher, logger, v)
	adminSvc := NewAdminService(db, repo, publisher, logger)

	return &testEnv{
		db:        db,
		repo:      repo,
		cfg:       cfg,
		auth:      authSvc,
		otp:       otpSvc,
		suggest:   suggestSvc,
		submit:    submitSvc,
		admin:     adminSvc,
		mailer:    noopMailer,
		publisher: publisher,
		tokens:    tokens,
	}
}

// registerUser runs the full OTP plus verification flow and returns the
// created user.
func registerUser(t *testing.T, env *testEnv, name, email, password string) *models.User {
	t.Helper()
	ctx := context.Background()

	otpResp, err := env.auth.RequestRegisterOtp(ctx, email)
	require.NoError(t, err)
	require.NotEmpty(t, otpResp.DevOtp, "test environment should echo the raw code")

	resp, err := env.auth.Register(ctx, &RegisterRequest{
		Name:     name,
		Email:    email,
		Otp:      otpResp.DevOtp,
		Password: password,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp.User
}

// createAdmin inserts an admin account directly; admins are provisioned
// out of band, not through registration.
func createAdmin(t *testing.T, env *testEnv, email string) *models.User {
	t.Helper()
	admin := &models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: "unused",
		Role:         models.RoleAdmin,
		IsVerified:   true,
	}
	require.NoError(t, env.db.Create(admin).Error)
	return admin
}

// saveSuggestion persists a minimal suggestion for the given user.
func saveSuggestion(t *testing.T, env *testEnv, userID uint) *models.Suggestion {
	t.Helper()
	suggestion, err := env.suggest.Save(context.Background(), &CreateSuggestionRequest{
		Title:       "Personal Project Portfolio Hub",
		Description: "A web app to track and showcase projects",
		TechStack:   []string{"React", "Go", "PostgreSQL"},
	}, userID)
	require.NoError(t, err)
	return suggestion
}
