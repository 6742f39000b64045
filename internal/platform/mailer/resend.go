package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lingua-api/internal/config"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/resend/resend-go/v2"
)

// emailSender is the subset of the Resend e-mail service used here.
type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	emails emailSender
	from   string
	logger *slog.Logger
}

var _ Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a ResendMailer. A sender address is required.
func NewResendMailer(cfg config.EmailConfig, logger *slog.Logger) (*ResendMailer, error) {
	if cfg.ResendAPIKey == "" {
		return nil, errors.New("resend API key cannot be empty")
	}
	if cfg.From == "" {
		return nil, errors.New("email.from is required for the Resend mailer")
	}
	client := resend.NewClient(cfg.ResendAPIKey)
	return newResendMailer(client.Emails, cfg.From, logger), nil
}

func newResendMailer(emails emailSender, from string, log *slog.Logger) *ResendMailer {
	if log == nil {
		log = slog.Default()
	}
	return &ResendMailer{
		emails: emails,
		from:   from,
		logger: log.With(slog.String("component", "resend_mailer")),
	}
}

// Send implements Mailer.
func (m *ResendMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := validateMessage(to, subject); err != nil {
		return err
	}

	resp, err := m.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send mail via Resend: %w", err)
	}

	var id string
	if resp != nil {
		id = resp.Id
	}
	logger.FromContextOrDefault(ctx, m.logger).DebugContext(ctx, "mail sent",
		slog.String("transport", "resend"),
		slog.String("message_id", id))
	return nil
}
