package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// FoodInput carries the caller-editable fields of a food spot.
type FoodInput struct {
	Name     string
	Location string
	Cuisine  string
	Link     string
	Notes    string
}

// FoodService implements food spot CRUD scoped to trip membership.
type FoodService struct {
	food   repo.FoodRepo
	access *AccessService
}

// NewFoodService constructs a FoodService.
func NewFoodService(food repo.FoodRepo, access *AccessService) *FoodService {
	return &FoodService{food: food, access: access}
}

// ListByTrip returns the trip's food spots, newest first.
func (s *FoodService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.FoodSpot, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	items, err := s.food.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.FoodService.ListByTrip: %w", err)
	}
	return items, nil
}

// Create adds a food spot to the trip.
func (s *FoodService) Create(ctx context.Context, userID, tripID uuid.UUID, in FoodInput) (domain.FoodSpot, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.FoodSpot{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.FoodSpot{}, fmt.Errorf("service.FoodService.Create: name is required: %w", domain.ErrValidation)
	}

	created, err := s.food.Create(ctx, domain.FoodSpot{
		TripID:   tripID,
		Name:     name,
		Location: in.Location,
		Cuisine:  in.Cuisine,
		Link:     in.Link,
		Notes:    in.Notes,
	})
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("service.FoodService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an existing food spot's editable fields.
func (s *FoodService) Update(ctx context.Context, userID, id uuid.UUID, in FoodInput) (domain.FoodSpot, error) {
	existing, err := s.food.GetByID(ctx, id)
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("service.FoodService.Update: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return domain.FoodSpot{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.FoodSpot{}, fmt.Errorf("service.FoodService.Update: name is required: %w", domain.ErrValidation)
	}

	updated, err := s.food.Update(ctx, domain.FoodSpot{
		ID:       id,
		Name:     name,
		Location: in.Location,
		Cuisine:  in.Cuisine,
		Link:     in.Link,
		Notes:    in.Notes,
	})
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("service.FoodService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a food spot.
func (s *FoodService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.food.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.FoodService.Delete: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.food.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FoodService.Delete: %w", err)
	}
	return nil
}
