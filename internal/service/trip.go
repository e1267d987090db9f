package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// TripInput carries the caller-editable fields of a trip.
type TripInput struct {
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// TripService implements trip CRUD plus the aggregated bundle read.
type TripService struct {
	trips   repo.TripRepo
	days    repo.DayRepo
	lodging repo.LodgingRepo
	food    repo.FoodRepo
	access  *AccessService
}

// NewTripService constructs a TripService.
func NewTripService(trips repo.TripRepo, days repo.DayRepo, lodging repo.LodgingRepo, food repo.FoodRepo, access *AccessService) *TripService {
	return &TripService{trips: trips, days: days, lodging: lodging, food: food, access: access}
}

// Create validates the input and persists a new trip owned by userID.
func (s *TripService) Create(ctx context.Context, userID uuid.UUID, in TripInput) (domain.Trip, error) {
	trip, err := validateTripInput(in)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	trip.CreatedBy = userID

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// ListForUser returns the trips visible to the user, newest first.
func (s *TripService) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.trips.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListForUser: %w", err)
	}
	return trips, nil
}

// Get returns a single trip. The caller must be at least a member.
func (s *TripService) Get(ctx context.Context, userID, tripID uuid.UUID) (domain.Trip, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Trip{}, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// Update overwrites the trip's editable fields and records userID as the last
// editor. Any member may edit.
//
// Shrinking the date range does not delete existing day rows outside it; they
// simply stop being part of the materialized range going forward.
func (s *TripService) Update(ctx context.Context, userID, tripID uuid.UUID, in TripInput) (domain.Trip, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Trip{}, err
	}

	trip, err := validateTripInput(in)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	trip.ID = tripID
	trip.LastEditedBy = &userID

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes the trip and all of its sub-resources. Owner only.
func (s *TripService) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleOwner); err != nil {
		return err
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Complete returns the trip together with its materialized days, lodging, and
// food spots in one aggregated read. The caller must be at least a member.
func (s *TripService) Complete(ctx context.Context, userID, tripID uuid.UUID) (domain.TripBundle, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.TripBundle{}, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripBundle{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}

	days, err := materializeDays(ctx, s.days, trip)
	if err != nil {
		return domain.TripBundle{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}

	lodging, err := s.lodging.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripBundle{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}

	food, err := s.food.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripBundle{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}

	return domain.TripBundle{Trip: trip, Days: days, Lodging: lodging, Food: food}, nil
}

// validateTripInput normalizes and validates caller input, returning a trip
// with only the editable fields populated.
func validateTripInput(in TripInput) (domain.Trip, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Trip{}, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}

	start, end := domain.Midnight(in.StartDate), domain.Midnight(in.EndDate)
	if start.After(end) {
		return domain.Trip{}, fmt.Errorf("end date before start date: %w", domain.ErrValidation)
	}

	return domain.Trip{Name: name, StartDate: start, EndDate: end}, nil
}
