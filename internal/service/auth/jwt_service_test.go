package auth

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret-that-is-long-enough-for-testing"
	testLifetime = 7 * 24 * time.Hour
	wrongSecret  = "wrong-secret-that-is-long-enough-for-testing"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeHours: 1})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret})
	assert.Error(t, err)

	svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeHours: 168})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	svc := newHMACJWTService(testSecret, testLifetime, fixedClock(issuedAt))

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(testLifetime).Unix()+1, claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

// TestTokenLifecycle covers the Unissued -> Valid -> Expired transitions.
func TestTokenLifecycle(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	userID := uuid.New()
	token, err := newHMACJWTService(testSecret, testLifetime, fixedClock(issuedAt)).
		GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{name: "valid one second after issue", at: issuedAt.Add(time.Second)},
		{name: "valid six days later", at: issuedAt.Add(6 * 24 * time.Hour)},
		{name: "valid one second before expiry", at: issuedAt.Add(testLifetime - time.Second)},
		{name: "valid at the expiry instant", at: issuedAt.Add(testLifetime)},
		{name: "valid just after the expiry instant", at: issuedAt.Add(testLifetime + 999*time.Millisecond)},
		{name: "expired one second after expiry", at: issuedAt.Add(testLifetime + time.Second), wantErr: ErrExpiredToken},
		{name: "expired long after", at: issuedAt.Add(30 * 24 * time.Hour), wantErr: ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newHMACJWTService(testSecret, testLifetime, fixedClock(tt.at))
			claims, err := svc.ValidateToken(context.Background(), token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestTokenExpiryWithSubSecondIssue(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 8, 30, 0, 750*int(time.Millisecond), time.UTC)
	token, err := newHMACJWTService(testSecret, testLifetime, fixedClock(issuedAt)).
		GenerateToken(context.Background(), uuid.New())
	require.NoError(t, err)

	validate := func(at time.Time) error {
		_, err := newHMACJWTService(testSecret, testLifetime, fixedClock(at)).
			ValidateToken(context.Background(), token)
		return err
	}

	assert.NoError(t, validate(issuedAt.Add(testLifetime)), "valid at the expiry instant")
	assert.ErrorIs(t, validate(issuedAt.Add(testLifetime+time.Second)), ErrExpiredToken)
}

func TestExpiryClaim(t *testing.T) {
	t.Parallel()

	whole := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, whole.Add(time.Second), expiryClaim(whole))
	assert.Equal(t, whole.Add(time.Second), expiryClaim(whole.Add(400*time.Millisecond)))
}

func TestValidateTokenRejectsMalformed(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := newHMACJWTService(testSecret, testLifetime, fixedClock(now))
	userID := uuid.New()

	valid, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	wrongKey, err := newHMACJWTService(wrongSecret, testLifetime, fixedClock(now)).
		GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	forgedPayload := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"uid":"` + uuid.NewString() + `","exp":` + "9999999999" + `}`))
	tampered := parts[0] + "." + forgedPayload + "." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": userID.String(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"uid": userID.String(),
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": userID.String(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":             "",
		"garbage":           "not-a-token",
		"wrong signing key": wrongKey,
		"tampered payload":  tampered,
		"alg none":          noneToken,
		"unexpected alg":    hs512,
		"missing expiry":    noExpiry,
		"truncated":         valid[:len(valid)-5],
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.ValidateToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
