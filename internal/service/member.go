package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// MemberService manages trip sharing: listing, inviting, and removing members.
type MemberService struct {
	members  repo.MembershipRepo
	profiles repo.ProfileRepo
	access   *AccessService
}

// NewMemberService constructs a MemberService.
func NewMemberService(members repo.MembershipRepo, profiles repo.ProfileRepo, access *AccessService) *MemberService {
	return &MemberService{members: members, profiles: profiles, access: access}
}

// ListByTrip returns the trip's members with their profile data, owner first.
// Any member may see the list.
func (s *MemberService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Member, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	members, err := s.members.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.MemberService.ListByTrip: %w", err)
	}
	return members, nil
}

// Add invites a user to the trip as a member. Owner only.
//
// The invited user must already have a profile (they signed in at least
// once). Invites always grant the member role; ownership is never
// transferred through the sharing UI.
func (s *MemberService) Add(ctx context.Context, userID, tripID, targetID uuid.UUID) (domain.Membership, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleOwner); err != nil {
		return domain.Membership{}, err
	}

	if _, err := s.profiles.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Membership{}, fmt.Errorf("service.MemberService.Add: unknown user: %w", domain.ErrValidation)
		}
		return domain.Membership{}, fmt.Errorf("service.MemberService.Add: %w", err)
	}

	if _, err := s.members.Get(ctx, tripID, targetID); err == nil {
		return domain.Membership{}, fmt.Errorf("service.MemberService.Add: already a member: %w", domain.ErrValidation)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Membership{}, fmt.Errorf("service.MemberService.Add: %w", err)
	}

	added, err := s.members.Add(ctx, domain.Membership{
		TripID: tripID,
		UserID: targetID,
		Role:   domain.RoleMember,
	})
	if err != nil {
		return domain.Membership{}, fmt.Errorf("service.MemberService.Add: %w", err)
	}
	return added, nil
}

// Remove revokes a user's membership. Owner only.
//
// The owner's own membership can never be removed, so a trip always has an
// owner. Removing a user who is not a member returns ErrNotFound.
func (s *MemberService) Remove(ctx context.Context, userID, tripID, targetID uuid.UUID) error {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleOwner); err != nil {
		return err
	}

	target, err := s.members.Get(ctx, tripID, targetID)
	if err != nil {
		return fmt.Errorf("service.MemberService.Remove: %w", err)
	}
	if target.Role == domain.RoleOwner {
		return fmt.Errorf("service.MemberService.Remove: cannot remove the trip owner: %w", domain.ErrValidation)
	}

	if err := s.members.Remove(ctx, tripID, targetID); err != nil {
		return fmt.Errorf("service.MemberService.Remove: %w", err)
	}
	return nil
}
