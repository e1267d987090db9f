package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/middleware"
)

var testSecret = []byte("test-secret")

// ensurerFunc adapts a function to the ProfileEnsurer interface.
type ensurerFunc func(ctx context.Context, p domain.Profile) (domain.Profile, error)

func (f ensurerFunc) Ensure(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return f(ctx, p)
}

// passthroughEnsurer returns the profile unchanged.
var passthroughEnsurer = ensurerFunc(func(_ context.Context, p domain.Profile) (domain.Profile, error) {
	return p, nil
})

// signToken builds an HS256 token with the given subject and claims.
func signToken(t *testing.T, secret []byte, sub string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": "ana@example.com",
		"name":  "Ana",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func newAuthHandler(ensurer middleware.ProfileEnsurer, captured *middleware.Identity) http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return middleware.NewAuthenticator(testSecret, ensurer, logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := middleware.IdentityFromContext(r.Context()); ok && captured != nil {
				*captured = id
			}
			w.WriteHeader(http.StatusOK)
		}),
	)
}

func TestAuthenticator_ValidToken(t *testing.T) {
	userID := uuid.New()

	var synced domain.Profile
	ensurer := ensurerFunc(func(_ context.Context, p domain.Profile) (domain.Profile, error) {
		synced = p
		return p, nil
	})

	var identity middleware.Identity
	h := newAuthHandler(ensurer, &identity)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, userID.String()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, "Ana", identity.FullName)

	// The profile mirror runs on every authenticated request.
	assert.Equal(t, userID, synced.ID)
	assert.Equal(t, "ana@example.com", synced.Email)
}

func TestAuthenticator_Rejections(t *testing.T) {
	h := newAuthHandler(passthroughEnsurer, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signTokenWithSecret(t, []byte("other-secret"), uuid.New().String())},
		{"sub not a uuid", "Bearer " + signTokenWithSecret(t, testSecret, "user-42")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "unauthorized")
		})
	}
}

func TestAuthenticator_ExpiredToken(t *testing.T) {
	h := newAuthHandler(passthroughEnsurer, nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/trips", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func signTokenWithSecret(t *testing.T, secret []byte, sub string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}
