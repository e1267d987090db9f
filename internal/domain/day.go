package domain

import (
	"time"

	"github.com/google/uuid"
)

// Day is one calendar date within a trip's range, holding a free-text plan.
// (TripID, Date) is unique — materialization never creates duplicates.
type Day struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Date      time.Time // calendar date, midnight UTC
	Plan      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
