package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/generator"
	"github.com/ProjectPilot-2025/portfolio-service/internal/mailer"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

// ServiceManagerConfig bundles the external collaborators the services
// depend on beyond the repository layer.
type ServiceManagerConfig struct {
	Config    *config.Config
	Tokens    *auth.TokenService
	Passwords *auth.PasswordService
	Google    *auth.GoogleVerifier
	Mailer    mailer.Mailer
	Generator generator.Generator
	Publisher events.EventPublisher
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	// Dependencies
	db        *gorm.DB
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	config    ServiceManagerConfig

	// Service instances
	authService       AuthService
	otpService        OtpService
	suggestionService SuggestionService
	submissionService SubmissionService
	adminService      AdminService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		db:        db,
		repo:      repo,
		logger:    logger,
		validator: validator,
		config:    config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	if err := sm.validateDependencies(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	sm.otpService = NewOtpService(sm.repo, sm.logger)
	sm.logger.Info("OTP service initialized")

	sm.authService = NewAuthService(
		sm.repo,
		sm.otpService,
		sm.config.Tokens,
		sm.config.Passwords,
		sm.config.Google,
		sm.config.Mailer,
		sm.config.Publisher,
		sm.config.Config,
		sm.logger,
		sm.validator,
	)
	sm.logger.Info("Auth service initialized")

	sm.suggestionService = NewSuggestionService(sm.repo, sm.config.Generator, sm.logger, sm.validator)
	sm.logger.Info("Suggestion service initialized")

	sm.submissionService = NewSubmissionService(sm.db, sm.repo, sm.config.Publisher, sm.logger, sm.validator)
	sm.logger.Info("Submission service initialized")

	sm.adminService = NewAdminService(sm.db, sm.repo, sm.config.Publisher, sm.logger)
	sm.logger.Info("Admin service initialized")

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) validateDependencies() error {
	if sm.repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.db == nil {
		return fmt.Errorf("database handle is required")
	}
	if sm.config.Tokens == nil {
		return fmt.Errorf("token service is required")
	}
	if sm.config.Passwords == nil {
		return fmt.Errorf("password service is required")
	}
	if sm.config.Mailer == nil {
		return fmt.Errorf("mailer is required")
	}
	if sm.config.Generator == nil {
		return fmt.Errorf("suggestion generator is required")
	}
	if sm.config.Config == nil {
		return fmt.Errorf("config is required")
	}
	return nil
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.authService
}

func (sm *serviceManager) Otp() OtpService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.otpService
}

func (sm *serviceManager) Suggestion() SuggestionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.suggestionService
}

func (sm *serviceManager) Submission() SubmissionService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.submissionService
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.adminService
}

// Shutdown releases resources held by the services.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if sm.config.Publisher != nil {
		if err := sm.config.Publisher.Close(); err != nil {
			sm.logger.Warn("failed to close event publisher", "error", err)
		}
	}

	sm.shutdown = true
	sm.initialized = false
	sm.logger.Info("Service manager shut down")

	return nil
}
