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

// LodgingInput carries the caller-editable fields of a lodging entry.
type LodgingInput struct {
	Name     string
	Address  string
	CheckIn  *time.Time
	CheckOut *time.Time
	Notes    string
}

// LodgingService implements lodging CRUD scoped to trip membership.
type LodgingService struct {
	lodging repo.LodgingRepo
	access  *AccessService
}

// NewLodgingService constructs a LodgingService.
func NewLodgingService(lodging repo.LodgingRepo, access *AccessService) *LodgingService {
	return &LodgingService{lodging: lodging, access: access}
}

// ListByTrip returns the trip's lodging entries, booked dates first.
func (s *LodgingService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Lodging, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	items, err := s.lodging.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LodgingService.ListByTrip: %w", err)
	}
	return items, nil
}

// Create adds a lodging entry to the trip.
func (s *LodgingService) Create(ctx context.Context, userID, tripID uuid.UUID, in LodgingInput) (domain.Lodging, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Lodging{}, err
	}

	l, err := validateLodgingInput(in)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Create: %w", err)
	}
	l.TripID = tripID

	created, err := s.lodging.Create(ctx, l)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an existing lodging entry's editable fields.
func (s *LodgingService) Update(ctx context.Context, userID, id uuid.UUID, in LodgingInput) (domain.Lodging, error) {
	existing, err := s.lodging.GetByID(ctx, id)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return domain.Lodging{}, err
	}

	l, err := validateLodgingInput(in)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	l.ID = id

	updated, err := s.lodging.Update(ctx, l)
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a lodging entry.
func (s *LodgingService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.lodging.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.LodgingService.Delete: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.lodging.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.LodgingService.Delete: %w", err)
	}
	return nil
}

// validateLodgingInput normalizes and validates caller input.
func validateLodgingInput(in LodgingInput) (domain.Lodging, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Lodging{}, fmt.Errorf("name is required: %w", domain.ErrValidation)
	}

	var checkIn, checkOut *time.Time
	if in.CheckIn != nil {
		ci := domain.Midnight(*in.CheckIn)
		checkIn = &ci
	}
	if in.CheckOut != nil {
		co := domain.Midnight(*in.CheckOut)
		checkOut = &co
	}
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return domain.Lodging{}, fmt.Errorf("check-out before check-in: %w", domain.ErrValidation)
	}

	return domain.Lodging{
		Name:     name,
		Address:  in.Address,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Notes:    in.Notes,
	}, nil
}
