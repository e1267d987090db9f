package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/repo"
)

// DayService implements the day timeline: lazy materialization from the
// trip's date range, plan editing, and the display projection.
type DayService struct {
	trips  repo.TripRepo
	days   repo.DayRepo
	access *AccessService
}

// NewDayService constructs a DayService.
func NewDayService(trips repo.TripRepo, days repo.DayRepo, access *AccessService) *DayService {
	return &DayService{trips: trips, days: days, access: access}
}

// ListByTrip returns the trip's days in calendar order, materializing them
// from the trip's date range on first read. The caller must be a member.
func (s *DayService) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Day, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return nil, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListByTrip: %w", err)
	}

	days, err := materializeDays(ctx, s.days, trip)
	if err != nil {
		return nil, fmt.Errorf("service.DayService.ListByTrip: %w", err)
	}
	return days, nil
}

// Display returns the trip's days in their rendered form: day-of-month
// numbers, month labels on transitions, and exactly one selected day.
// selected == nil selects the first day.
func (s *DayService) Display(ctx context.Context, userID, tripID uuid.UUID, selected *time.Time) ([]domain.DisplayDay, error) {
	days, err := s.ListByTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return domain.FormatDays(days, selected), nil
}

// UpsertByDate creates or replaces the plan for the given date on the trip.
// The date must fall inside the trip's date range.
func (s *DayService) UpsertByDate(ctx context.Context, userID, tripID uuid.UUID, date time.Time, plan string) (domain.Day, error) {
	if _, err := s.access.Require(ctx, tripID, userID, domain.RoleMember); err != nil {
		return domain.Day{}, err
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.UpsertByDate: %w", err)
	}

	date = domain.Midnight(date)
	if date.Before(trip.StartDate) || date.After(trip.EndDate) {
		return domain.Day{}, fmt.Errorf("service.DayService.UpsertByDate: date outside trip range: %w", domain.ErrValidation)
	}

	day, err := s.days.UpsertByDate(ctx, domain.Day{TripID: tripID, Date: date, Plan: plan})
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.UpsertByDate: %w", err)
	}
	return day, nil
}

// UpdatePlan replaces the plan text of an existing day.
func (s *DayService) UpdatePlan(ctx context.Context, userID, dayID uuid.UUID, plan string) (domain.Day, error) {
	day, err := s.days.GetByID(ctx, dayID)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.UpdatePlan: %w", err)
	}

	if _, err := s.access.Require(ctx, day.TripID, userID, domain.RoleMember); err != nil {
		return domain.Day{}, err
	}

	updated, err := s.days.UpdatePlan(ctx, dayID, plan)
	if err != nil {
		return domain.Day{}, fmt.Errorf("service.DayService.UpdatePlan: %w", err)
	}
	return updated, nil
}

// Delete removes a day row. The date stays absent on subsequent reads;
// UpsertByDate can bring it back.
func (s *DayService) Delete(ctx context.Context, userID, dayID uuid.UUID) error {
	day, err := s.days.GetByID(ctx, dayID)
	if err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}

	if _, err := s.access.Require(ctx, day.TripID, userID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.days.Delete(ctx, dayID); err != nil {
		return fmt.Errorf("service.DayService.Delete: %w", err)
	}
	return nil
}

// materializeDays expands the trip's date range into day rows on first read,
// then returns the full list in calendar order. Materialization is create if
// absent, not a sync: any existing day row means the set is returned as is,
// so deleted days stay deleted. The bulk insert skips existing
// (trip_id, date) pairs, so two racing first reads converge on the same rows.
func materializeDays(ctx context.Context, days repo.DayRepo, trip domain.Trip) ([]domain.Day, error) {
	n, err := days.CountByTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		dates := domain.DatesInRange(trip.StartDate, trip.EndDate)
		if err := days.InsertMissing(ctx, trip.ID, dates); err != nil {
			return nil, err
		}
	}

	return days.ListByTrip(ctx, trip.ID)
}
