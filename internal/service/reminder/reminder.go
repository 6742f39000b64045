// Package reminder sends the daily practice reminder to every account.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/platform/mailer"
	"github.com/phrazzld/lingua-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// Subject is the subject line of every reminder.
const Subject = "Daily Language Practice Reminder"

// DefaultConcurrency bounds parallel sends when none is configured.
const DefaultConcurrency = 4

// Service runs the reminder sweep.
type Service interface {
	// SendAll e-mails every account and returns how many sends succeeded.
	// Individual failures are logged and do not abort the sweep.
	SendAll(ctx context.Context) (int, error)
}

type service struct {
	users       store.UserStore
	mailer      mailer.Mailer
	appURL      string
	concurrency int
	logger      *slog.Logger
}

// NewService creates a reminder Service. appURL is the link placed in the body.
func NewService(
	users store.UserStore,
	m mailer.Mailer,
	appURL string,
	concurrency int,
	logger *slog.Logger,
) (Service, error) {
	if users == nil {
		return nil, errors.New("users cannot be nil")
	}
	if m == nil {
		return nil, errors.New("mailer cannot be nil")
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		users:       users,
		mailer:      m,
		appURL:      appURL,
		concurrency: concurrency,
		logger:      logger.With(slog.String("component", "reminder_service")),
	}, nil
}

// Body renders the reminder text for a user.
func Body(user *domain.User, appURL string) string {
	return fmt.Sprintf(
		"Hi %s,\nThis is your daily reminder to practice your language lessons!\nVisit the app: %s",
		user.DisplayName(), appURL,
	)
}

// SendAll implements Service.
func (s *service) SendAll(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	users, err := s.users.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	var sent atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, u := range users {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := s.mailer.Send(ctx, u.Email, Subject, Body(u, s.appURL)); err != nil {
				log.WarnContext(ctx, "failed to send reminder",
					slog.String("user_id", u.ID.String()),
					slog.String("error", err.Error()))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	// Goroutines log and skip their own send failures.
	if err := g.Wait(); err != nil {
		return int(sent.Load()), fmt.Errorf("reminder sweep failed: %w", err)
	}

	n := int(sent.Load())
	log.InfoContext(ctx, "reminder sweep finished",
		slog.Int("users", len(users)),
		slog.Int("sent", n))

	if err := ctx.Err(); err != nil {
		return n, err
	}
	return n, nil
}
