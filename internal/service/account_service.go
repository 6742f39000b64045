package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/service/auth"
	"github.com/phrazzld/lingua-api/internal/store"
)

// AccountService registers accounts and exchanges credentials for session tokens.
type AccountService interface {
	// Signup creates an account and returns a session token for it.
	// Returns ErrDuplicateEmail if the e-mail is already registered.
	Signup(ctx context.Context, name, email, password string) (string, *domain.User, error)

	// Login returns a session token for matching credentials.
	// Returns ErrInvalidCredentials for an unknown e-mail or a wrong password.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type accountService struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	tokens   auth.JWTService
	logger   *slog.Logger
}

// NewAccountService creates an AccountService.
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.JWTService,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, errors.New("users cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("hasher cannot be nil")
	}
	if verifier == nil {
		return nil, errors.New("verifier cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accountService{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "account_service")),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Signup implements AccountService.
func (s *accountService) Signup(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	email = normalizeEmail(email)

	if err := domain.ValidatePlaintextPassword(password); err != nil {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(name, email, hash)
	if err != nil {
		return "", nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("signup with registered email")
			return "", nil, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("account created", slog.String("user_id", user.ID.String()))
	return token, user, nil
}

// Login implements AccountService.
func (s *accountService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email")
			return "", nil, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.String("error", err.Error()))
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password", slog.String("user_id", user.ID.String()))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}
