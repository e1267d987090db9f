package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// MemberResponse is the wire format of a trip member with profile data.
type MemberResponse struct {
	TripID   uuid.UUID `json:"trip_id"`
	UserID   uuid.UUID `json:"user_id"`
	Role     string    `json:"role"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

// AddMemberRequest is the wire format for inviting a user to a trip.
type AddMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// MembershipResponse is the wire format of a bare membership row.
type MembershipResponse struct {
	TripID    uuid.UUID `json:"trip_id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMembers handles GET /api/trips/{tripID}/members.
func (s *Server) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	members, err := s.members.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]MemberResponse, len(members))
	for i, m := range members {
		out[i] = memberToResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

// AddMember handles POST /api/trips/{tripID}/members.
func (s *Server) AddMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req AddMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if req.UserID == uuid.Nil {
		writeRequestError(w, "user_id is required")
		return
	}

	added, err := s.members.Add(r.Context(), userID, tripID, req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, MembershipResponse{
		TripID:    added.TripID,
		UserID:    added.UserID,
		Role:      string(added.Role),
		CreatedAt: added.CreatedAt,
	})
}

// RemoveMember handles DELETE /api/trips/{tripID}/members/{userID}.
func (s *Server) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}
	targetID, err := pathUUID(r, "userID")
	if err != nil {
		writeRequestError(w, "invalid user id")
		return
	}

	if err := s.members.Remove(r.Context(), userID, tripID, targetID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func memberToResponse(m domain.Member) MemberResponse {
	return MemberResponse{
		TripID:   m.TripID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		Email:    m.Email,
		FullName: m.FullName,
	}
}
