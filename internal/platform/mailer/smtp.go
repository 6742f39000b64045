package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lingua-api/internal/config"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/wneessen/go-mail"
)

// smtpSender is the subset of *mail.Client used by SMTPMailer.
type smtpSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends through an SMTP relay with mandatory STARTTLS and PLAIN auth.
type SMTPMailer struct {
	client smtpSender
	from   string
	logger *slog.Logger
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates an SMTPMailer. The sender defaults to the SMTP user.
func NewSMTPMailer(cfg config.SMTPConfig, from string, logger *slog.Logger) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if from == "" {
		from = cfg.User
	}
	return newSMTPMailer(client, from, logger), nil
}

func newSMTPMailer(client smtpSender, from string, log *slog.Logger) *SMTPMailer {
	if log == nil {
		log = slog.Default()
	}
	return &SMTPMailer{
		client: client,
		from:   from,
		logger: log.With(slog.String("component", "smtp_mailer")),
	}
}

// Send implements Mailer.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := validateMessage(to, subject); err != nil {
		return err
	}

	msg, err := buildMessage(m.from, to, subject, body)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail via SMTP: %w", err)
	}

	logger.FromContextOrDefault(ctx, m.logger).DebugContext(ctx, "mail sent",
		slog.String("transport", "smtp"))
	return nil
}

func buildMessage(from, to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrInvalidMessage, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrInvalidMessage, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}
