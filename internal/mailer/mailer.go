package mailer

import (
	"context"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/ProjectPilot-2025/portfolio-service/internal/config"
	"github.com/ProjectPilot-2025/portfolio-service/internal/models"
)

// SendResult is the non-escalating outcome of a mail delivery attempt.
// Callers log failed deliveries but never fail the surrounding operation:
// an OTP stays valid even when its email never arrives.
type SendResult struct {
	Delivered bool
	Err       error
}

// Mailer sends transactional mail.
type Mailer interface {
	SendOtpEmail(ctx context.Context, to string, code string, purpose models.OtpPurpose) SendResult
}

type smtpMailer struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, logger *slog.Logger) Mailer {
	return &smtpMailer{cfg: cfg, logger: logger}
}

func (m *smtpMailer) SendOtpEmail(ctx context.Context, to string, code string, purpose models.OtpPurpose) SendResult {
	if m.cfg.Host == "" {
		err := fmt.Errorf("smtp is not configured")
		m.logger.Warn("OTP email skipped", "to", to, "error", err)
		return SendResult{Delivered: false, Err: err}
	}

	subject := "Your Registration OTP - ProjectPilot"
	if purpose == models.OtpPurposeReset {
		subject = "Your Password Reset OTP - ProjectPilot"
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return m.fail(to, fmt.Errorf("invalid sender address: %w", err))
	}
	if err := msg.To(to); err != nil {
		return m.fail(to, fmt.Errorf("invalid recipient address: %w", err))
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, fmt.Sprintf(
		`<div style="font-family:Arial;font-size:14px;color:#333">
			<p><strong>Your OTP:</strong></p>
			<h2 style="letter-spacing:4px">%s</h2>
			<p>This OTP is valid for 10 minutes.</p>
		</div>`, code))

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return m.fail(to, fmt.Errorf("failed to create smtp client: %w", err))
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return m.fail(to, fmt.Errorf("failed to send mail: %w", err))
	}

	m.logger.Info("OTP email sent", "to", to, "purpose", purpose)
	return SendResult{Delivered: true}
}

func (m *smtpMailer) fail(to string, err error) SendResult {
	m.logger.Warn("OTP email not delivered", "to", to, "error", err)
	return SendResult{Delivered: false, Err: err}
}

// NoopMailer is used in tests and when outbound mail is disabled.
type NoopMailer struct {
	Sent []string
}

func (n *NoopMailer) SendOtpEmail(_ context.Context, to string, _ string, _ models.OtpPurpose) SendResult {
	n.Sent = append(n.Sent, to)
	return SendResult{Delivered: true}
}
