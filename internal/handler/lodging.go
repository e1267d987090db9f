package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// LodgingRequest is the wire format for creating or updating a lodging entry.
type LodgingRequest struct {
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	CheckIn  *openapi_types.Date `json:"check_in,omitempty"`
	CheckOut *openapi_types.Date `json:"check_out,omitempty"`
	Notes    string              `json:"notes"`
}

// LodgingResponse is the wire format of a lodging entry.
type LodgingResponse struct {
	ID        uuid.UUID           `json:"id"`
	TripID    uuid.UUID           `json:"trip_id"`
	Name      string              `json:"name"`
	Address   string              `json:"address"`
	CheckIn   *openapi_types.Date `json:"check_in,omitempty"`
	CheckOut  *openapi_types.Date `json:"check_out,omitempty"`
	Notes     string              `json:"notes"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ListLodging handles GET /api/trips/{tripID}/lodging.
func (s *Server) ListLodging(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	items, err := s.lodging.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]LodgingResponse, len(items))
	for i, l := range items {
		out[i] = lodgingToResponse(l)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateLodging handles POST /api/trips/{tripID}/lodging.
func (s *Server) CreateLodging(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req LodgingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.lodging.Create(r.Context(), userID, tripID, lodgingInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, lodgingToResponse(created))
}

// UpdateLodging handles PUT /api/lodging/{id}.
func (s *Server) UpdateLodging(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid lodging id")
		return
	}

	var req LodgingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.lodging.Update(r.Context(), userID, id, lodgingInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lodgingToResponse(updated))
}

// DeleteLodging handles DELETE /api/lodging/{id}.
func (s *Server) DeleteLodging(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid lodging id")
		return
	}

	if err := s.lodging.Delete(r.Context(), userID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func lodgingInput(req LodgingRequest) service.LodgingInput {
	in := service.LodgingInput{
		Name:    req.Name,
		Address: req.Address,
		Notes:   req.Notes,
	}
	if req.CheckIn != nil {
		ci := req.CheckIn.Time
		in.CheckIn = &ci
	}
	if req.CheckOut != nil {
		co := req.CheckOut.Time
		in.CheckOut = &co
	}
	return in
}

func lodgingToResponse(l domain.Lodging) LodgingResponse {
	resp := LodgingResponse{
		ID:        l.ID,
		TripID:    l.TripID,
		Name:      l.Name,
		Address:   l.Address,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.CheckIn != nil {
		resp.CheckIn = &openapi_types.Date{Time: *l.CheckIn}
	}
	if l.CheckOut != nil {
		resp.CheckOut = &openapi_types.Date{Time: *l.CheckOut}
	}
	return resp
}
