package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// ActivityInput carries the caller-editable fields of an activity.
type ActivityInput struct {
	Name     string
	Location string
	Notes    string
}

// ActivityService implements activity CRUD scoped to trip membership.
type ActivityService struct {
	activities repo.ActivityRepo
	access     *AccessService
}

// NewActivityService constructs an ActivityService.
func NewActivityService(activities repo.ActivityRepo, access *AccessService) *ActivityService {
	return &ActivityService{activities: activities, access: access}
}

// ListByTrip returns the trip's activities, newest first.
func (s *ActivityService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Activity, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	items, err := s.activities.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTrip: %w", err)
	}
	return items, nil
}

// Create adds an activity to the trip.
func (s *ActivityService) Create(ctx context.Context, userID, tripID uuid.UUID, in ActivityInput) (domain.Activity, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Activity{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: name is required: %w", domain.ErrValidation)
	}

	created, err := s.activities.Create(ctx, domain.Activity{
		TripID:   tripID,
		Name:     name,
		Location: in.Location,
		Notes:    in.Notes,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an existing activity's editable fields.
func (s *ActivityService) Update(ctx context.Context, userID, id uuid.UUID, in ActivityInput) (domain.Activity, error) {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return domain.Activity{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: name is required: %w", domain.ErrValidation)
	}

	updated, err := s.activities.Update(ctx, domain.Activity{
		ID:       id,
		Name:     name,
		Location: in.Location,
		Notes:    in.Notes,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an activity.
func (s *ActivityService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}
