package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkeller/tripboard/backend/internal/domain"
	"github.com/pkeller/tripboard/backend/internal/handler"
)

// mockDayServicer is a test double for handler.DayServicer.
type mockDayServicer struct {
	listByTrip   func(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Day, error)
	display      func(ctx context.Context, userID, tripID uuid.UUID, selected *time.Time) ([]domain.DisplayDay, error)
	upsertByDate func(ctx context.Context, userID, tripID uuid.UUID, date time.Time, plan string) (domain.Day, error)
	updatePlan   func(ctx context.Context, userID, dayID uuid.UUID, plan string) (domain.Day, error)
	delete       func(ctx context.Context, userID, dayID uuid.UUID) error
}

func (m *mockDayServicer) ListByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]domain.Day, error) {
	return m.listByTrip(ctx, userID, tripID)
}
func (m *mockDayServicer) Display(ctx context.Context, userID, tripID uuid.UUID, selected *time.Time) ([]domain.DisplayDay, error) {
	return m.display(ctx, userID, tripID, selected)
}
func (m *mockDayServicer) UpsertByDate(ctx context.Context, userID, tripID uuid.UUID, date time.Time, plan string) (domain.Day, error) {
	return m.upsertByDate(ctx, userID, tripID, date, plan)
}
func (m *mockDayServicer) UpdatePlan(ctx context.Context, userID, dayID uuid.UUID, plan string) (domain.Day, error) {
	return m.updatePlan(ctx, userID, dayID, plan)
}
func (m *mockDayServicer) Delete(ctx context.Context, userID, dayID uuid.UUID) error {
	return m.delete(ctx, userID, dayID)
}

var _ handler.DayServicer = (*mockDayServicer)(nil)

func TestListDays(t *testing.T) {
	tripID := uuid.New()
	days := []domain.Day{
		{ID: uuid.New(), TripID: tripID, Date: domain.NewDate(2026, 6, 29), Plan: "Arrive"},
		{ID: uuid.New(), TripID: tripID, Date: domain.NewDate(2026, 6, 30)},
	}

	svc := &mockDayServicer{
		listByTrip: func(_ context.Context, _, gotTrip uuid.UUID) ([]domain.Day, error) {
			assert.Equal(t, tripID, gotTrip)
			return days, nil
		},
	}

	h := newTestServer(testDeps{days: svc}, uuid.New())
	rec := do(h, http.MethodGet, "/api/trips/"+tripID.String()+"/days", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[[]handler.DayResponse](t, rec)
	require.Len(t, body, 2)
	assert.Equal(t, "2026-06-29", body[0].Date.Format("2006-01-02"))
	assert.Equal(t, "Arrive", body[0].Plan)
}

func TestDisplayDays_SelectedParam(t *testing.T) {
	tripID := uuid.New()

	var gotSelected *time.Time
	svc := &mockDayServicer{
		display: func(_ context.Context, _, _ uuid.UUID, selected *time.Time) ([]domain.DisplayDay, error) {
			gotSelected = selected
			return []domain.DisplayDay{
				{ID: uuid.New(), Date: domain.NewDate(2026, 7, 1), DayOfMonth: 1, MonthLabel: "JUL", Selected: true},
			}, nil
		},
	}

	h := newTestServer(testDeps{days: svc}, uuid.New())

	t.Run("with selected", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/trips/"+tripID.String()+"/days/display?selected=2026-07-01", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		require.NotNil(t, gotSelected)
		assert.True(t, domain.SameDate(domain.NewDate(2026, 7, 1), *gotSelected))

		body := decodeBody[[]handler.DisplayDayResponse](t, rec)
		require.Len(t, body, 1)
		assert.Equal(t, "JUL", body[0].MonthLabel)
		assert.True(t, body[0].Selected)
	})

	t.Run("without selected", func(t *testing.T) {
		gotSelected = nil
		rec := do(h, http.MethodGet, "/api/trips/"+tripID.String()+"/days/display", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, gotSelected)
	})

	t.Run("malformed selected", func(t *testing.T) {
		rec := do(h, http.MethodGet, "/api/trips/"+tripID.String()+"/days/display?selected=today", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUpsertDay(t *testing.T) {
	caller := uuid.New()
	tripID := uuid.New()

	svc := &mockDayServicer{
		upsertByDate: func(_ context.Context, userID, gotTrip uuid.UUID, date time.Time, plan string) (domain.Day, error) {
			assert.Equal(t, caller, userID)
			assert.Equal(t, tripID, gotTrip)
			assert.True(t, domain.SameDate(domain.NewDate(2026, 6, 30), date))
			return domain.Day{ID: uuid.New(), TripID: gotTrip, Date: date, Plan: plan}, nil
		},
	}

	h := newTestServer(testDeps{days: svc}, caller)
	rec := do(h, http.MethodPost, "/api/days", jsonBody(t, map[string]string{
		"trip_id": tripID.String(),
		"date":    "2026-06-30",
		"plan":    "Wine tasting",
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[handler.DayResponse](t, rec)
	assert.Equal(t, "Wine tasting", body.Plan)
}

func TestUpsertDay_MissingTripID(t *testing.T) {
	h := newTestServer(testDeps{days: &mockDayServicer{}}, uuid.New())
	rec := do(h, http.MethodPost, "/api/days", jsonBody(t, map[string]string{
		"date": "2026-06-30",
		"plan": "Orphan",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateDay(t *testing.T) {
	dayID := uuid.New()

	svc := &mockDayServicer{
		updatePlan: func(_ context.Context, _, gotDay uuid.UUID, plan string) (domain.Day, error) {
			assert.Equal(t, dayID, gotDay)
			return domain.Day{ID: gotDay, Plan: plan}, nil
		},
	}

	h := newTestServer(testDeps{days: svc}, uuid.New())
	rec := do(h, http.MethodPut, "/api/days/"+dayID.String(), jsonBody(t, map[string]string{
		"plan": "Sleep in",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[handler.DayResponse](t, rec)
	assert.Equal(t, "Sleep in", body.Plan)
}

func TestDeleteDay(t *testing.T) {
	svc := &mockDayServicer{
		delete: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
	}

	h := newTestServer(testDeps{days: svc}, uuid.New())
	rec := do(h, http.MethodDelete, "/api/days/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
