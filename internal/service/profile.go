package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// ProfileService mirrors identity-provider users into the local profiles
// table and exposes the member directory.
type ProfileService struct {
	profiles repo.ProfileRepo
}

// NewProfileService constructs a ProfileService.
func NewProfileService(profiles repo.ProfileRepo) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Ensure upserts the profile for a verified identity. Called on every
// authenticated request so email and name stay in sync with the provider.
func (s *ProfileService) Ensure(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if strings.TrimSpace(p.Email) == "" {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Ensure: email is required: %w", domain.ErrValidation)
	}

	saved, err := s.profiles.Upsert(ctx, p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("service.ProfileService.Ensure: %w", err)
	}
	return saved, nil
}

// List returns all known profiles ordered by email, for the invite picker.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.List: %w", err)
	}
	return profiles, nil
}
