package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

const bearerPrefix = "Bearer "

// Authenticator resolves an Authorization header to an account.
type Authenticator struct {
	jwt    JWTService
	users  store.UserStore
	logger *slog.Logger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(jwtService JWTService, users store.UserStore, logger *slog.Logger) (*Authenticator, error) {
	if jwtService == nil {
		return nil, errors.New("jwtService cannot be nil")
	}
	if users == nil {
		return nil, errors.New("users cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Authenticator{
		jwt:    jwtService,
		users:  users,
		logger: logger.With(slog.String("component", "authenticator")),
	}, nil
}

// ExtractBearerToken returns the token from an Authorization header value,
// or ErrMissingToken if the header is absent or not of the form "Bearer <token>".
func ExtractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Verify checks the credential in an Authorization header value and returns
// the account it names. It returns ErrMissingToken, ErrInvalidToken,
// ErrExpiredToken or ErrUnknownSubject for the corresponding failures; any
// other error comes from the account store.
func (a *Authenticator) Verify(ctx context.Context, authorizationHeader string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	token, err := ExtractBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	claims, err := a.jwt.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("token subject not found", slog.String("user_id", claims.UserID.String()))
			return nil, ErrUnknownSubject
		}
		log.Error("failed to resolve token subject",
			slog.String("user_id", claims.UserID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}
