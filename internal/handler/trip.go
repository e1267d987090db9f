package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// TripRequest is the wire format for creating or updating a trip.
type TripRequest struct {
	Name      string             `json:"name"`
	StartDate openapi_types.Date `json:"start_date"`
	EndDate   openapi_types.Date `json:"end_date"`
}

// TripResponse is the wire format of a trip.
type TripResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	CreatedBy    uuid.UUID          `json:"created_by"`
	LastEditedBy *uuid.UUID         `json:"last_edited_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// TripBundleResponse aggregates the main app view in one payload.
type TripBundleResponse struct {
	Trip    TripResponse      `json:"trip"`
	Days    []DayResponse     `json:"days"`
	Lodging []LodgingResponse `json:"lodging"`
	Food    []FoodResponse    `json:"food"`
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	trips, err := s.trips.ListForUser(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]TripResponse, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.trips.Create(r.Context(), userID, tripInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	trip, err := s.trips.Get(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), userID, tripID, tripInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripComplete handles GET /api/trips/{tripID}/complete.
func (s *Server) GetTripComplete(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	bundle, err := s.trips.Complete(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := TripBundleResponse{
		Trip:    tripToResponse(bundle.Trip),
		Days:    make([]DayResponse, len(bundle.Days)),
		Lodging: make([]LodgingResponse, len(bundle.Lodging)),
		Food:    make([]FoodResponse, len(bundle.Food)),
	}
	for i, d := range bundle.Days {
		out.Days[i] = dayToResponse(d)
	}
	for i, l := range bundle.Lodging {
		out.Lodging[i] = lodgingToResponse(l)
	}
	for i, f := range bundle.Food {
		out.Food[i] = foodToResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// --- mapping helpers --------------------------------------------------------

func tripInput(req TripRequest) service.TripInput {
	return service.TripInput{
		Name:      req.Name,
		StartDate: req.StartDate.Time,
		EndDate:   req.EndDate.Time,
	}
}

func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		EndDate:      openapi_types.Date{Time: t.EndDate},
		CreatedBy:    t.CreatedBy,
		LastEditedBy: t.LastEditedBy,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
