package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// DecisionRequest is the wire format for creating or updating a decision.
// Status may be omitted on create, defaulting to "open".
type DecisionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Outcome     string `json:"outcome"`
}

// DecisionResponse is the wire format of a decision.
type DecisionResponse struct {
	ID          uuid.UUID `json:"id"`
	TripID      uuid.UUID `json:"trip_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Outcome     string    `json:"outcome"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListDecisions handles GET /api/trips/{tripID}/decisions.
func (s *Server) ListDecisions(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	items, err := s.decisions.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]DecisionResponse, len(items))
	for i, d := range items {
		out[i] = decisionToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateDecision handles POST /api/trips/{tripID}/decisions.
func (s *Server) CreateDecision(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req DecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.decisions.Create(r.Context(), userID, tripID, decisionInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, decisionToResponse(created))
}

// UpdateDecision handles PUT /api/decisions/{id}.
func (s *Server) UpdateDecision(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid decision id")
		return
	}

	var req DecisionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.decisions.Update(r.Context(), userID, id, decisionInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, decisionToResponse(updated))
}

// DeleteDecision handles DELETE /api/decisions/{id}.
func (s *Server) DeleteDecision(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid decision id")
		return
	}

	if err := s.decisions.Delete(r.Context(), userID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decisionInput(req DecisionRequest) service.DecisionInput {
	return service.DecisionInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.DecisionStatus(req.Status),
		Outcome:     req.Outcome,
	}
}

func decisionToResponse(d domain.Decision) DecisionResponse {
	return DecisionResponse{
		ID:          d.ID,
		TripID:      d.TripID,
		Title:       d.Title,
		Description: d.Description,
		Status:      string(d.Status),
		Outcome:     d.Outcome,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
