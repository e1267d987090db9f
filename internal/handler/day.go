package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// DayResponse is the wire format of a day.
type DayResponse struct {
	ID        uuid.UUID          `json:"id"`
	TripID    uuid.UUID          `json:"trip_id"`
	Date      openapi_types.Date `json:"date"`
	Plan      string             `json:"plan"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// DisplayDayResponse is one day as rendered in the day strip.
type DisplayDayResponse struct {
	ID         uuid.UUID          `json:"id"`
	Date       openapi_types.Date `json:"date"`
	DayOfMonth int                `json:"day_of_month"`
	MonthLabel string             `json:"month_label"`
	Plan       string             `json:"plan"`
	Selected   bool               `json:"selected"`
}

// UpsertDayRequest is the wire format for POST /api/days.
type UpsertDayRequest struct {
	TripID uuid.UUID          `json:"trip_id"`
	Date   openapi_types.Date `json:"date"`
	Plan   string             `json:"plan"`
}

// UpdateDayRequest is the wire format for PUT /api/days/{dayID}.
type UpdateDayRequest struct {
	Plan string `json:"plan"`
}

// ListDays handles GET /api/trips/{tripID}/days.
// Days are materialized from the trip's date range on first read.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	days, err := s.days.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]DayResponse, len(days))
	for i, d := range days {
		out[i] = dayToResponse(d)
	}
	writeJSON(w, http.StatusOK, out)
}

// DisplayDays handles GET /api/trips/{tripID}/days/display.
// The optional ?selected=YYYY-MM-DD parameter marks that date selected;
// without it (or when the date is not part of the trip) the first day is.
func (s *Server) DisplayDays(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var selected *time.Time
	if raw := r.URL.Query().Get("selected"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeRequestError(w, "selected must be a YYYY-MM-DD date")
			return
		}
		selected = &parsed
	}

	days, err := s.days.Display(r.Context(), userID, tripID, selected)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]DisplayDayResponse, len(days))
	for i, d := range days {
		out[i] = DisplayDayResponse{
			ID:         d.ID,
			Date:       openapi_types.Date{Time: d.Date},
			DayOfMonth: d.DayOfMonth,
			MonthLabel: d.MonthLabel,
			Plan:       d.Plan,
			Selected:   d.Selected,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// UpsertDay handles POST /api/days.
// Creates the day or replaces its plan when (trip_id, date) already exists.
func (s *Server) UpsertDay(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	var req UpsertDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if req.TripID == uuid.Nil {
		writeRequestError(w, "trip_id is required")
		return
	}

	day, err := s.days.UpsertByDate(r.Context(), userID, req.TripID, req.Date.Time, req.Plan)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(day))
}

// UpdateDay handles PUT /api/days/{dayID}.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	dayID, err := pathUUID(r, "dayID")
	if err != nil {
		writeRequestError(w, "invalid day id")
		return
	}

	var req UpdateDayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	day, err := s.days.UpdatePlan(r.Context(), userID, dayID, req.Plan)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dayToResponse(day))
}

// DeleteDay handles DELETE /api/days/{dayID}.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	dayID, err := pathUUID(r, "dayID")
	if err != nil {
		writeRequestError(w, "invalid day id")
		return
	}

	if err := s.days.Delete(r.Context(), userID, dayID); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func dayToResponse(d domain.Day) DayResponse {
	return DayResponse{
		ID:        d.ID,
		TripID:    d.TripID,
		Date:      openapi_types.Date{Time: d.Date},
		Plan:      d.Plan,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
