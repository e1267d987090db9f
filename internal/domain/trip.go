// Package domain contains the core data types for the Tripboard application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is the top-level planning unit. Days, lodging, activities, food spots,
// decisions, and memberships all belong to a trip.
//
// StartDate and EndDate are calendar dates: time.Time values normalized to
// midnight UTC with no meaningful time-of-day component. Invariant:
// StartDate <= EndDate, enforced by the service layer and a DB CHECK.
type Trip struct {
	ID           uuid.UUID
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	CreatedBy    uuid.UUID
	LastEditedBy *uuid.UUID // nil until the first update
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TripBundle aggregates a trip with the sub-resources the main app view needs
// in a single response.
type TripBundle struct {
	Trip    Trip
	Days    []Day
	Lodging []Lodging
	Food    []FoodSpot
}
