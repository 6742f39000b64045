package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/lingua-api/internal/platform/mailer"
)

// SentMail records one call to MockMailer.Send.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer implements mailer.Mailer for testing. It is safe for concurrent use.
type MockMailer struct {
	// SendFn overrides the default behavior when set.
	SendFn func(ctx context.Context, to, subject, body string) error

	mu   sync.Mutex
	sent []SentMail
}

var _ mailer.Mailer = (*MockMailer)(nil)

// Send records the message, then delegates to SendFn if set.
func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFn != nil {
		if err := m.SendFn(ctx, to, subject, body); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of the successfully sent messages.
func (m *MockMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}
