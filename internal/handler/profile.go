package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/middleware"
)

// ProfileResponse is the wire format of a user profile.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// GetMe handles GET /api/me.
// The authenticator has already upserted the profile; this returns the
// stored record for the caller.
func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error: ErrorDetail{Code: "unauthorized", Message: "missing identity"},
		})
		return
	}

	profile, err := s.profiles.Ensure(r.Context(), domain.Profile{
		ID:       identity.UserID,
		Email:    identity.Email,
		FullName: identity.FullName,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(profile))
}

// ListUsers handles GET /api/users, the invite picker directory.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		out[i] = profileToResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func profileToResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
	}
}
