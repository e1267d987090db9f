package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// FoodRequest is the wire format for creating or updating a food spot.
type FoodRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
	Link     string `json:"link"`
	Notes    string `json:"notes"`
}

// FoodResponse is the wire format of a food spot.
type FoodResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Cuisine   string    `json:"cuisine"`
	Link      string    `json:"link"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListFood handles GET /api/trips/{tripID}/food.
func (s *Server) ListFood(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	items, err := s.food.ListByTrip(r.Context(), userID, tripID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := make([]FoodResponse, len(items))
	for i, f := range items {
		out[i] = foodToResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateFood handles POST /api/trips/{tripID}/food.
func (s *Server) CreateFood(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	tripID, err := pathUUID(r, "tripID")
	if err != nil {
		writeRequestError(w, "invalid trip id")
		return
	}

	var req FoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.food.Create(r.Context(), userID, tripID, service.FoodInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, foodToResponse(created))
}

// UpdateFood handles PUT /api/food/{id}.
func (s *Server) UpdateFood(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid food spot id")
		return
	}

	var req FoodRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.food.Update(r.Context(), userID, id, service.FoodInput(req))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, foodToResponse(updated))
}

// DeleteFood handles DELETE /api/food/{id}.
func (s *Server) DeleteFood(w http.ResponseWriter, r *http.Request) {
	userID, _ := callerID(r)

	id, err := pathUUID(r, "id")
	if err != nil {
		writeRequestError(w, "invalid food spot id")
		return
	}

	if err := s.food.Delete(r.Context(), userID, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func foodToResponse(f domain.FoodSpot) FoodResponse {
	return FoodResponse{
		ID:        f.ID,
		TripID:    f.TripID,
		Name:      f.Name,
		Location:  f.Location,
		Cuisine:   f.Cuisine,
		Link:      f.Link,
		Notes:     f.Notes,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
