package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// Function-field mocks for the repo interfaces. Tests set only the fields
// they need; calling an unset field panics, which surfaces unexpected repo
// calls immediately.

type mockTripRepo struct {
	CreateFn      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	ListForUserFn func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	UpdateFn      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	DeleteFn      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.CreateFn(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockTripRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	return m.ListForUserFn(ctx, userID)
}

func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.UpdateFn(ctx, trip)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockDayRepo struct {
	ListByTripFn    func(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (domain.Day, error)
	CountByTripFn   func(ctx context.Context, tripID uuid.UUID) (int64, error)
	InsertMissingFn func(ctx context.Context, tripID uuid.UUID, dates []time.Time) error
	UpsertByDateFn  func(ctx context.Context, day domain.Day) (domain.Day, error)
	UpdatePlanFn    func(ctx context.Context, id uuid.UUID, plan string) (domain.Day, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockDayRepo) CountByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	return m.CountByTripFn(ctx, tripID)
}

func (m *mockDayRepo) InsertMissing(ctx context.Context, tripID uuid.UUID, dates []time.Time) error {
	return m.InsertMissingFn(ctx, tripID, dates)
}

func (m *mockDayRepo) UpsertByDate(ctx context.Context, day domain.Day) (domain.Day, error) {
	return m.UpsertByDateFn(ctx, day)
}

func (m *mockDayRepo) UpdatePlan(ctx context.Context, id uuid.UUID, plan string) (domain.Day, error) {
	return m.UpdatePlanFn(ctx, id, plan)
}

func (m *mockDayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockMembershipRepo struct {
	GetFn        func(ctx context.Context, tripID, userID uuid.UUID) (domain.Membership, error)
	ListByTripFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)
	AddFn        func(ctx context.Context, m domain.Membership) (domain.Membership, error)
	RemoveFn     func(ctx context.Context, tripID, userID uuid.UUID) error
}

func (m *mockMembershipRepo) Get(ctx context.Context, tripID, userID uuid.UUID) (domain.Membership, error) {
	return m.GetFn(ctx, tripID, userID)
}

func (m *mockMembershipRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error) {
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockMembershipRepo) Add(ctx context.Context, mem domain.Membership) (domain.Membership, error) {
	return m.AddFn(ctx, mem)
}

func (m *mockMembershipRepo) Remove(ctx context.Context, tripID, userID uuid.UUID) error {
	return m.RemoveFn(ctx, tripID, userID)
}

type mockProfileRepo struct {
	UpsertFn  func(ctx context.Context, p domain.Profile) (domain.Profile, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (domain.Profile, error)
	ListFn    func(ctx context.Context) ([]domain.Profile, error)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	return m.UpsertFn(ctx, p)
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	return m.ListFn(ctx)
}

type mockLodgingRepo struct {
	ListByTripFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (domain.Lodging, error)
	CreateFn     func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	UpdateFn     func(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockLodgingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockLodgingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockLodgingRepo) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.CreateFn(ctx, l)
}

func (m *mockLodgingRepo) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	return m.UpdateFn(ctx, l)
}

func (m *mockLodgingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockFoodRepo struct {
	ListByTripFn func(ctx context.Context, tripID uuid.UUID) ([]domain.FoodSpot, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (domain.FoodSpot, error)
	CreateFn     func(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error)
	UpdateFn     func(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFoodRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FoodSpot, error) {
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockFoodRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.FoodSpot, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockFoodRepo) Create(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error) {
	return m.CreateFn(ctx, f)
}

func (m *mockFoodRepo) Update(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error) {
	return m.UpdateFn(ctx, f)
}

func (m *mockFoodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

type mockDecisionRepo struct {
	ListByTripFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Decision, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (domain.Decision, error)
	CreateFn     func(ctx context.Context, d domain.Decision) (domain.Decision, error)
	UpdateFn     func(ctx context.Context, d domain.Decision) (domain.Decision, error)
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDecisionRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Decision, error) {
	return m.ListByTripFn(ctx, tripID)
}

func (m *mockDecisionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Decision, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockDecisionRepo) Create(ctx context.Context, d domain.Decision) (domain.Decision, error) {
	return m.CreateFn(ctx, d)
}

func (m *mockDecisionRepo) Update(ctx context.Context, d domain.Decision) (domain.Decision, error) {
	return m.UpdateFn(ctx, d)
}

func (m *mockDecisionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

// memberGet returns a GetFn serving a single explicit membership row and
// ErrNotFound for every other (trip, user) pair.
func memberGet(tripID, userID uuid.UUID, role domain.Role) func(context.Context, uuid.UUID, uuid.UUID) (domain.Membership, error) {
	return func(_ context.Context, t, u uuid.UUID) (domain.Membership, error) {
		if t == tripID && u == userID {
			return domain.Membership{TripID: t, UserID: u, Role: role}, nil
		}
		return domain.Membership{}, domain.ErrNotFound
	}
}

// noMembers is a GetFn that finds no membership rows at all.
func noMembers(context.Context, uuid.UUID, uuid.UUID) (domain.Membership, error) {
	return domain.Membership{}, domain.ErrNotFound
}
