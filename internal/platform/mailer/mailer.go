// Package mailer delivers plain-text notification e-mails.
//
// Three implementations exist: SMTP through go-mail, the Resend HTTP API,
// and a disabled mailer used when neither is configured. New picks one from
// configuration.
package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/lingua-api/internal/config"
)

// ErrNotConfigured is returned by every send on the disabled mailer.
var ErrNotConfigured = errors.New("mail delivery is not configured")

// ErrInvalidMessage is returned when a message lacks a recipient or subject.
var ErrInvalidMessage = errors.New("invalid mail message")

// Mailer sends a single plain-text e-mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New selects a Mailer: SMTP when host and user are set, Resend when an API
// key is set, otherwise the disabled mailer.
func New(cfg *config.Config, logger *slog.Logger) (Mailer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case cfg.SMTP.Enabled():
		logger.Info("using SMTP mailer",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port))
		return NewSMTPMailer(cfg.SMTP, cfg.Email.From, logger)
	case cfg.Email.ResendAPIKey != "":
		logger.Info("using Resend mailer")
		return NewResendMailer(cfg.Email, logger)
	default:
		logger.Warn("no mail transport configured; reminders will not be delivered")
		return Disabled{}, nil
	}
}

// Disabled is a Mailer that never delivers.
type Disabled struct{}

// Send always returns ErrNotConfigured.
func (Disabled) Send(context.Context, string, string, string) error {
	return ErrNotConfigured
}

func validateMessage(to, subject string) error {
	if to == "" {
		return errors.Join(ErrInvalidMessage, errors.New("recipient is required"))
	}
	if subject == "" {
		return errors.Join(ErrInvalidMessage, errors.New("subject is required"))
	}
	return nil
}
