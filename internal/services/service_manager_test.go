package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/mailer"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories/postgres"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

func newManagerDeps(t *testing.T) (*gorm.DB, ServiceManagerConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.OneTimeCode{}, &models.Suggestion{}, &models.Submission{},
	))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens, err := auth.NewTokenService(testSecret, "portfolio-service")
	require.NoError(t, err)

	cfg := ServiceManagerConfig{
		Config: &config.Config{
			Environment: "test",
			JWT: config.JWTConfig{
				Secret:         testSecret,
				Issuer:         "portfolio-service",
				TokenTTL:       30 * 24 * time.Hour,
				GoogleTokenTTL: 24 * time.Hour,
			},
		},
		Tokens:    tokens,
		Passwords: auth.NewPasswordServiceWithCost(bcrypt.MinCost),
		Google:    auth.NewGoogleVerifier(""),
		Mailer:    &mailer.NoopMailer{},
		Generator: generator.NewTemplateGenerator(),
		Publisher: events.NewMockEventPublisher(logger),
	}
	return db, cfg
}

func TestServiceManager_InitializeAndGetters(t *testing.T) {
	db, cfg := newManagerDeps(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})

	sm := NewServiceManager(db, repo, logger, validator.New(), cfg)
	require.NoError(t, sm.Initialize(context.Background()))

	assert.NotNil(t, sm.Auth())
	assert.NotNil(t, sm.Otp())
	assert.NotNil(t, sm.Suggestion())
	assert.NotNil(t, sm.Submission())
	assert.NotNil(t, sm.Admin())

	// Initialize is idempotent.
	assert.NoError(t, sm.Initialize(context.Background()))
	assert.NoError(t, sm.Shutdown(context.Background()))
}

func TestServiceManager_PanicsBeforeInitialize(t *testing.T) {
	db, cfg := newManagerDeps(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})

	sm := NewServiceManager(db, repo, logger, validator.New(), cfg)
	assert.Panics(t, func() { sm.Auth() })
}

func TestServiceManager_MissingDependency(t *testing.T) {
	db, cfg := newManagerDeps(t)
	cfg.Mailer = nil
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := postgres.NewPostgreSQLRepository(postgres.RepositoryConfig{DB: db})

	sm := NewServiceManager(db, repo, logger, validator.New(), cfg)
	assert.Error(t, sm.Initialize(context.Background()))
}
