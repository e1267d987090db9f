package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkeller/tripboard/backend/internal/handler"
	"github.com/pkeller/tripboard/backend/internal/middleware"
)

// testDeps bundles the mock servicers wired into a test server. Set only the
// fields your test needs; routes whose servicer is nil will panic if hit.
type testDeps struct {
	trips      handler.TripServicer
	days       handler.DayServicer
	lodging    handler.LodgingServicer
	activities handler.ActivityServicer
	food       handler.FoodServicer
	decisions  handler.DecisionServicer
	members    handler.MemberServicer
	profiles   handler.ProfileServicer
}

// newTestServer wires a Server over the mocks and substitutes the JWT
// authenticator with a middleware that injects the given identity, the same
// contract the real authenticator provides.
func newTestServer(deps testDeps, caller uuid.UUID) http.Handler {
	srv := handler.NewServer(
		deps.trips, deps.days, deps.lodging, deps.activities,
		deps.food, deps.decisions, deps.members, deps.profiles,
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
	)

	injectIdentity := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithIdentity(r.Context(), middleware.Identity{
				UserID: caller,
				Email:  "caller@example.com",
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	return srv.Routes(injectIdentity)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do performs a request against the handler and returns the recorder.
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the JSON response body into T.
func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
