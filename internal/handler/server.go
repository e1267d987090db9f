// Package handler implements the HTTP handlers for the Tripboard API.
// Handlers are methods on Server, split into resource-specific files
// (trip.go, day.go, etc.) that all share the same struct. Handlers decode
// and validate the wire format, call the service layer, and translate
// domain errors into HTTP responses; no business rules live here.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/service"
)

// The handler depends on these interfaces rather than the concrete services,
// following the consumer-side interface convention. Handler tests inject
// mocks; main wires the real services, which satisfy them.

// TripServicer defines the trip operations the handler depends on.
type TripServicer interface {
	Create(ctx context.Context, userID uuid.UUID, in service.TripInput) (domain.Trip, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, userID, tripID uuid.UUID, in service.TripInput) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID uuid.UUID) error
	Complete(ctx context.Context, userID, tripID uuid.UUID) (domain.TripBundle, error)
}

// DayServicer defines the day timeline operations the handler depends on.
type DayServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Day, error)
	Display(ctx context.Context, userID, tripID uuid.UUID, selected *time.Time) ([]domain.DisplayDay, error)
	UpsertByDate(ctx context.Context, userID, tripID uuid.UUID, date time.Time, plan string) (domain.Day, error)
	UpdatePlan(ctx context.Context, userID, dayID uuid.UUID, plan string) (domain.Day, error)
	Delete(ctx context.Context, userID, dayID uuid.UUID) error
}

// LodgingServicer defines the lodging operations the handler depends on.
type LodgingServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Lodging, error)
	Create(ctx context.Context, userID, tripID uuid.UUID, in service.LodgingInput) (domain.Lodging, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.LodgingInput) (domain.Lodging, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ActivityServicer defines the activity operations the handler depends on.
type ActivityServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error)
	Create(ctx context.Context, userID, tripID uuid.UUID, in service.ActivityInput) (domain.Activity, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.ActivityInput) (domain.Activity, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// FoodServicer defines the food spot operations the handler depends on.
type FoodServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.FoodSpot, error)
	Create(ctx context.Context, userID, tripID uuid.UUID, in service.FoodInput) (domain.FoodSpot, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.FoodInput) (domain.FoodSpot, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DecisionServicer defines the decision operations the handler depends on.
type DecisionServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Decision, error)
	Create(ctx context.Context, userID, tripID uuid.UUID, in service.DecisionInput) (domain.Decision, error)
	Update(ctx context.Context, userID, id uuid.UUID, in service.DecisionInput) (domain.Decision, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// MemberServicer defines the membership operations the handler depends on.
type MemberServicer interface {
	ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Member, error)
	Add(ctx context.Context, userID, tripID, targetID uuid.UUID) (domain.Membership, error)
	Remove(ctx context.Context, userID, tripID, targetID uuid.UUID) error
}

// ProfileServicer defines the profile operations the handler depends on.
type ProfileServicer interface {
	Ensure(ctx context.Context, p domain.Profile) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	trips      TripServicer
	days       DayServicer
	lodging    LodgingServicer
	activities ActivityServicer
	food       FoodServicer
	decisions  DecisionServicer
	members    MemberServicer
	profiles   ProfileServicer
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	days DayServicer,
	lodging LodgingServicer,
	activities ActivityServicer,
	food FoodServicer,
	decisions DecisionServicer,
	members MemberServicer,
	profiles ProfileServicer,
	log *slog.Logger,
) *Server {
	return &Server{
		trips:      trips,
		days:       days,
		lodging:    lodging,
		activities: activities,
		food:       food,
		decisions:  decisions,
		members:    members,
		profiles:   profiles,
		log:        log,
	}
}
