package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/lingua-api/internal/api/shared"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/service/auth"
)

// Verifier resolves an Authorization header value to an account.
type Verifier interface {
	Verify(ctx context.Context, authorizationHeader string) (*domain.User, error)
}

// AuthenticatedHandlerFunc is a handler that receives the verified account.
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *http.Request, user *domain.User)

// AuthMiddleware guards handlers with bearer-token authentication.
type AuthMiddleware struct {
	verifier Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Require wraps h so that it runs only for a verified account. Credential
// failures respond 401 and storage failures 500; h is not invoked in either case.
func (m *AuthMiddleware) Require(h AuthenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := m.verifier.Verify(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			status, msg := authFailure(err)
			shared.RespondWithErrorAndLog(w, r, status, msg, err)
			return
		}
		h(w, r, user)
	}
}

func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized, "Authorization header required"
	case errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, auth.ErrUnknownSubject):
		return http.StatusUnauthorized, "Unknown user"
	default:
		return http.StatusInternalServerError, "Authentication error"
	}
}
