package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// ActivityRequest is the wire format for creating or updating an activity.
type ActivityRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

// ActivityResponse is the wire format of an activity.
type ActivityResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListActivities handles GET /api/trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	items, err := s.activities.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]ActivityResponse, len(items))
	for i, a := range items {
		out[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateActivity handles POST /api/trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.activities.Create(r.Context(), userID, tripID, service.ActivityInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// UpdateActivity handles PUT /api/activities/{id}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid activity id")
		return
	}

	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.activities.Update(r.Context(), userID, id, service.ActivityInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /api/activities/{id}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid activity id")
		return
	}

	if err := s.activities.Delete(r.Context(), userID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func activityToResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		TripID:    a.TripID,
		Name:      a.Name,
		Location:  a.Location,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
