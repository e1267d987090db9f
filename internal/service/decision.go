package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// DecisionInput carries the caller-editable fields of a decision.
// An empty Status defaults to open on create.
type DecisionInput struct {
	Title       string
	Description string
	Status      domain.DecisionStatus
	Outcome     string
}

// DecisionService implements decision CRUD scoped to trip membership.
type DecisionService struct {
	decisions repo.DecisionRepo
	access    *AccessService
}

// NewDecisionService constructs a DecisionService.
func NewDecisionService(decisions repo.DecisionRepo, access *AccessService) *DecisionService {
	return &DecisionService{decisions: decisions, access: access}
}

// ListByTrip returns the trip's decisions, newest first.
func (s *DecisionService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Decision, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	items, err := s.decisions.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DecisionService.ListByTrip: %w", err)
	}
	return items, nil
}

// Create adds a decision to the trip.
func (s *DecisionService) Create(ctx context.Context, userID, tripID uuid.UUID, in DecisionInput) (domain.Decision, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Decision{}, err
	}

	d, err := validateDecisionInput(in)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("service.DecisionService.Create: %w", err)
	}
	d.TripID = tripID

	created, err := s.decisions.Create(ctx, d)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("service.DecisionService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an existing decision's editable fields.
func (s *DecisionService) Update(ctx context.Context, userID, id uuid.UUID, in DecisionInput) (domain.Decision, error) {
	existing, err := s.decisions.GetByID(ctx, id)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("service.DecisionService.Update: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return domain.Decision{}, err
	}

	d, err := validateDecisionInput(in)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("service.DecisionService.Update: %w", err)
	}
	d.ID = id

	updated, err := s.decisions.Update(ctx, d)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("service.DecisionService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a decision.
func (s *DecisionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	existing, err := s.decisions.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service.DecisionService.Delete: %w", err)
	}

	if _, err := s.access.Require(ctx, existing.TripID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.decisions.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DecisionService.Delete: %w", err)
	}
	return nil
}

// validateDecisionInput normalizes and validates caller input.
func validateDecisionInput(in DecisionInput) (domain.Decision, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Decision{}, fmt.Errorf("title is required: %w", domain.ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = domain.DecisionOpen
	}
	if !status.Valid() {
		return domain.Decision{}, fmt.Errorf("unknown status %q: %w", status, domain.ErrValidation)
	}

	return domain.Decision{
		Title:       title,
		Description: in.Description,
		Status:      status,
		Outcome:     in.Outcome,
	}, nil
}
