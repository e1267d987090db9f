package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// Identity is the authenticated caller extracted from a verified bearer token.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	FullName string
}

type contextKey string

const (
	identityKey       contextKey = "identity"
	identityHolderKey contextKey = "identityHolder"
)

// IdentityFromContext returns the caller identity set by the authenticator.
// ok is false on routes that are not behind the authenticator.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// WithIdentity returns a context carrying the given identity. Handler tests
// use this to stand in for the authenticator. If the request logger planted
// a holder upstream, it is filled so the identity shows up in the access log.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	if h, ok := ctx.Value(identityHolderKey).(*Identity); ok {
		*h = id
	}
	return context.WithValue(ctx, identityKey, id)
}

// withIdentityHolder plants a holder the authenticator fills in later.
// The logger runs outside the auth middleware, so the identity set downstream
// is invisible in the logger's own context; the shared holder carries it back
// up, the same way WrapResponseWriter carries the status code.
func withIdentityHolder(ctx context.Context, h *Identity) context.Context {
	return context.WithValue(ctx, identityHolderKey, h)
}

// ProfileEnsurer mirrors verified identities into the profiles table.
// Satisfied by *service.ProfileService.
type ProfileEnsurer interface {
	Ensure(ctx context.Context, p domain.Profile) (domain.Profile, error)
}

// NewAuthenticator returns a middleware that verifies the HS256 bearer token
// issued by the identity provider, upserts the caller's profile, and places
// an Identity in the request context.
//
// Expected claims: "sub" (user UUID), "email", and "name". Requests without a
// valid token get a 401 with a JSON error body.
func NewAuthenticator(secret []byte, profiles ProfileEnsurer, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			identity, err := verifyToken(token, secret)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			// Keep email and name in sync with the provider on every request.
			// A failure here is a server problem, not an auth problem.
			if _, err := profiles.Ensure(r.Context(), domain.Profile{
				ID:       identity.UserID,
				Email:    identity.Email,
				FullName: identity.FullName,
			}); err != nil {
				log.ErrorContext(r.Context(), "profile sync failed", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"error":{"code":"internal","message":"internal server error"}}`)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// verifyToken parses and validates the token and maps its claims to an Identity.
func verifyToken(token string, secret []byte) (Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("middleware.verifyToken: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("middleware.verifyToken: unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("middleware.verifyToken: missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return Identity{}, fmt.Errorf("middleware.verifyToken: sub is not a UUID: %w", err)
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return Identity{UserID: userID, Email: email, FullName: name}, nil
}

// unauthorized writes a 401 with the API's standard error envelope.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, `{"error":{"code":"unauthorized","message":%q}}`, message)
}
