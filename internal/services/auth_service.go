package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ProjectPilot-2025/portfolio-service/internal/auth"
	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/events"
	"github.com/ProjectPilot-2025/portfolio-service/internal/mailer"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
	"github.com/ProjectPilot-2025/portfolio-service/internal/repositories"
	"github.com/ProjectPilot-2025/portfolio-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	otp       OtpService
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	google    *auth.GoogleVerifier
	mail      mailer.Mailer
	publisher events.EventPublisher
	cfg       *config.Config
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAuthService(
	repo repositories.Repository,
	otp OtpService,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	google *auth.GoogleVerifier,
	mail mailer.Mailer,
	publisher events.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
	v *validator.Validator,
) AuthService {
	return &authService{
		repo:      repo,
		otp:       otp,
		tokens:    tokens,
		passwords: passwords,
		google:    google,
		mail:      mail,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		validator: v,
	}
}

// RequestRegisterOtp issues a registration code and sends it by mail.
// Mail delivery is best-effort: a failed send is logged, the code stays
// valid, and outside production the raw code is echoed in the response.
func (s *authService) RequestRegisterOtp(ctx context.Context, email string) (*OtpResponse, error) {
	email = validator.NormalizeEmail(email)

	otp, err := s.otp.Issue(ctx, email, models.OtpPurposeRegister)
	if err != nil {
		return nil, fmt.Errorf("failed to issue registration code: %w", err)
	}

	result := s.mail.SendOtpEmail(ctx, email, otp.Code, models.OtpPurposeRegister)
	if !result.Delivered {
		s.logger.Warn("registration OTP email not delivered", "email", email, "error", result.Err)
	}

	s.publishEvent(ctx, events.TypeOtpIssued, events.OtpEvent{Email: email, Purpose: string(models.OtpPurposeRegister)})

	resp := &OtpResponse{
		Message: "OTP generated. If the email doesn't arrive, request a new one.",
	}
	if !s.cfg.IsProduction() {
		resp.DevOtp = otp.Code
	}
	return resp, nil
}

// Register validates the OTP, creates the verified user, consumes the code
// and issues a 30-day token.
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}
	email := validator.NormalizeEmail(req.Email)

	otp, err := s.otp.Verify(ctx, email, req.Otp, models.OtpPurposeRegister)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsVerified:   true,
	}
	if err := s.repo.User().Create(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.otp.Consume(ctx, otp.ID); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", email)
	s.publishEvent(ctx, events.TypeUserRegistered, events.UserEvent{UserID: user.ID, Email: email})

	return &AuthResponse{Message: "Registration successful", Token: token, User: user}, nil
}

// Login issues a 30-day token. Unknown email and wrong password produce the
// same error so accounts cannot be enumerated.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}
	email := validator.NormalizeEmail(req.Email)

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			s.logger.Warn("login failed: unknown email", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("login failed: wrong password", "email", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, err := s.tokens.Generate(user, s.cfg.JWT.TokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login successful", "user_id", user.ID)
	return &AuthResponse{Message: "Login successful", Token: token, User: user}, nil
}

// GoogleLogin verifies the ID token and either logs the matching user in or
// creates a new verified account. Google sessions get the shorter 1-day
// token.
func (s *authService) GoogleLogin(ctx context.Context, rawIDToken string) (*AuthResponse, error) {
	identity, err := s.google.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByEmail(ctx, identity.Email)
	if err != nil && !repositories.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil || repositories.IsNotFoundError(err) {
		// The derived hash can never match a typed password, so the account
		// is usable only through Google until a password reset.
		dummyHash, hashErr := s.passwords.Hash(deriveUnusablePassword(identity.Subject, s.cfg.JWT.Secret))
		if hashErr != nil {
			return nil, hashErr
		}

		user = &models.User{
			Name:         identity.Name,
			Email:        identity.Email,
			PasswordHash: dummyHash,
			Role:         models.RoleUser,
			IsVerified:   true,
			GoogleID:     &identity.Subject,
		}
		if identity.AvatarURL != "" {
			user.AvatarURL = &identity.AvatarURL
		}
		if err := s.repo.User().Create(ctx, nil, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("google login created new user", "user_id", user.ID, "email", identity.Email)
	} else {
		s.logger.Info("google login for existing user", "user_id", user.ID)
	}

	token, err := s.tokens.Generate(user, s.cfg.JWT.GoogleTokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Message: "Login successful", Token: token, User: user}, nil
}

// RequestPasswordReset always returns the same generic message; a code is
// issued and mailed only when the account exists.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) (*OtpResponse, error) {
	email = validator.NormalizeEmail(email)
	generic := &OtpResponse{
		Message: "If the email exists, an OTP has been sent to reset the password",
	}

	_, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			s.logger.Warn("password reset requested for unknown email", "email", email)
			return generic, nil
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	otp, err := s.otp.Issue(ctx, email, models.OtpPurposeReset)
	if err != nil {
		return nil, fmt.Errorf("failed to issue reset code: %w", err)
	}

	result := s.mail.SendOtpEmail(ctx, email, otp.Code, models.OtpPurposeReset)
	if !result.Delivered {
		s.logger.Warn("reset OTP email not delivered", "email", email, "error", result.Err)
	}

	s.publishEvent(ctx, events.TypeOtpIssued, events.OtpEvent{Email: email, Purpose: string(models.OtpPurposeReset)})
	return generic, nil
}

// ResetPassword validates a RESET code, replaces the password hash and
// consumes the code.
func (s *authService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return errs
	}
	email := validator.NormalizeEmail(req.Email)

	otp, err := s.otp.Verify(ctx, email, req.Otp, models.OtpPurposeReset)
	if err != nil {
		return err
	}

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := s.passwords.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.User().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.otp.Consume(ctx, otp.ID); err != nil {
		return err
	}

	s.logger.Info("password reset successful", "user_id", user.ID)
	return nil
}

func (s *authService) publishEvent(ctx context.Context, eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		s.logger.Warn("failed to publish event", "type", eventType, "error", err)
	}
}

// deriveUnusablePassword builds the placeholder credential hashed into
// Google-created accounts.
func deriveUnusablePassword(subject, secret string) string {
	combined := subject + secret
	if len(combined) > 72 {
		combined = combined[:72]
	}
	return combined
}
