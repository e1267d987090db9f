// Package service contains the business logic of the Tripboard API.
// Services validate input, enforce per-trip authorization, and orchestrate
// repo calls. They return domain errors (ErrNotFound, ErrValidation,
// ErrForbidden) that the handler layer maps onto HTTP status codes.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// AccessService resolves a user's role on a trip. It is the single decision
// point for trip authorization; every other service delegates to it instead
// of querying memberships directly.
type AccessService struct {
	trips   repo.TripRepo
	members repo.MembershipRepo
}

// NewAccessService constructs an AccessService.
func NewAccessService(trips repo.TripRepo, members repo.MembershipRepo) *AccessService {
	return &AccessService{trips: trips, members: members}
}

// ResolveRole returns the user's role on the trip.
//
// An explicit membership row wins. Without one, the trip's creator is treated
// as owner — this covers trips created before memberships existed. Everyone
// else, including users of trips that do not exist at all, resolves to
// RoleNone without error.
func (s *AccessService) ResolveRole(ctx context.Context, tripID, userID uuid.UUID) (domain.Role, error) {
	m, err := s.members.Get(ctx, tripID, userID)
	if err == nil {
		return m.Role, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.RoleNone, fmt.Errorf("service.AccessService.ResolveRole: %w", err)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("service.AccessService.ResolveRole: %w", err)
	}

	if trip.CreatedBy == userID {
		return domain.RoleOwner, nil
	}
	return domain.RoleNone, nil
}

// Require resolves the user's role and checks it against min.
//
// A user with no role at all gets ErrNotFound rather than ErrForbidden, so
// responses do not reveal whether a trip they cannot see exists. A user with
// an insufficient role gets ErrForbidden.
func (s *AccessService) Require(ctx context.Context, tripID, userID uuid.UUID, min domain.Role) (domain.Role, error) {
	role, err := s.ResolveRole(ctx, tripID, userID)
	if err != nil {
		return domain.RoleNone, err
	}
	if role == domain.RoleNone {
		return domain.RoleNone, fmt.Errorf("service.AccessService.Require: %w", domain.ErrNotFound)
	}
	if !role.AtLeast(min) {
		return role, fmt.Errorf("service.AccessService.Require: %w", domain.ErrForbidden)
	}
	return role, nil
}
