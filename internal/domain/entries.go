package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lodging is a place to stay researched for a trip.
// CheckIn/CheckOut are calendar dates and nil when not yet booked.
type Lodging struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Address   string
	CheckIn   *time.Time
	CheckOut  *time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activity is something to do during a trip.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Location  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoodSpot is a restaurant or food option researched for a trip.
type FoodSpot struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Name      string
	Location  string
	Cuisine   string
	Link      string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DecisionStatus tracks whether a group decision is still open.
type DecisionStatus string

const (
	DecisionOpen    DecisionStatus = "open"
	DecisionDecided DecisionStatus = "decided"
)

// Valid reports whether s is one of the known decision statuses.
func (s DecisionStatus) Valid() bool {
	return s == DecisionOpen || s == DecisionDecided
}

// Decision is a question the trip group needs to settle, with its outcome
// once decided.
type Decision struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Title       string
	Description string
	Status      DecisionStatus
	Outcome     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
