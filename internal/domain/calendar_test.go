package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return domain.NewDate(y, m, d)
}

// ---- DatesInRange ----------------------------------------------------------

func TestDatesInRange_CountAndOrder(t *testing.T) {
	dates := domain.DatesInRange(date(2024, 6, 29), date(2024, 7, 2))

	require.Len(t, dates, 4)
	assert.Equal(t, date(2024, 6, 29), dates[0])
	assert.Equal(t, date(2024, 6, 30), dates[1])
	assert.Equal(t, date(2024, 7, 1), dates[2])
	assert.Equal(t, date(2024, 7, 2), dates[3])
}

func TestDatesInRange_SingleDay(t *testing.T) {
	dates := domain.DatesInRange(date(2025, 1, 15), date(2025, 1, 15))

	require.Len(t, dates, 1)
	assert.Equal(t, date(2025, 1, 15), dates[0])
}

func TestDatesInRange_StartAfterEnd(t *testing.T) {
	// Caller error — must yield an empty sequence, never loop.
	dates := domain.DatesInRange(date(2025, 3, 10), date(2025, 3, 1))

	assert.Empty(t, dates)
}

func TestDatesInRange_YearRollover(t *testing.T) {
	dates := domain.DatesInRange(date(2024, 12, 30), date(2025, 1, 2))

	require.Len(t, dates, 4)
	assert.Equal(t, date(2025, 1, 1), dates[2])
}

func TestDatesInRange_IgnoresTimeOfDayAndZone(t *testing.T) {
	// A start date carrying a late local time west of UTC must not shift
	// the generated calendar dates.
	loc := time.FixedZone("PST", -8*3600)
	start := time.Date(2024, 6, 29, 23, 30, 0, 0, loc)

	dates := domain.DatesInRange(start, date(2024, 6, 30))

	require.Len(t, dates, 2)
	assert.Equal(t, date(2024, 6, 29), dates[0])
}

// ---- FormatDays ------------------------------------------------------------

func daysFixture(dates ...time.Time) []domain.Day {
	days := make([]domain.Day, len(dates))
	for i, d := range dates {
		days[i] = domain.Day{Date: d}
	}
	return days
}

func TestFormatDays_MonthLabelsOnBoundaries(t *testing.T) {
	// Beach trip: 2024-06-29 .. 2024-07-02. Labels on day 29 (first in
	// sequence) and day 1 (month transition) only.
	days := daysFixture(
		date(2024, 6, 29), date(2024, 6, 30), date(2024, 7, 1), date(2024, 7, 2),
	)

	got := domain.FormatDays(days, nil)

	require.Len(t, got, 4)
	assert.Equal(t, "JUN", got[0].MonthLabel)
	assert.Equal(t, "", got[1].MonthLabel)
	assert.Equal(t, "JUL", got[2].MonthLabel)
	assert.Equal(t, "", got[3].MonthLabel)

	assert.Equal(t, 29, got[0].DayOfMonth)
	assert.Equal(t, 30, got[1].DayOfMonth)
	assert.Equal(t, 1, got[2].DayOfMonth)
	assert.Equal(t, 2, got[3].DayOfMonth)
}

func TestFormatDays_SingleMonthOnlyFirstLabeled(t *testing.T) {
	days := daysFixture(date(2025, 5, 10), date(2025, 5, 11), date(2025, 5, 12))

	got := domain.FormatDays(days, nil)

	assert.Equal(t, "MAY", got[0].MonthLabel)
	assert.Equal(t, "", got[1].MonthLabel)
	assert.Equal(t, "", got[2].MonthLabel)
}

func TestFormatDays_FirstSelectedByDefault(t *testing.T) {
	days := daysFixture(date(2025, 5, 10), date(2025, 5, 11))

	got := domain.FormatDays(days, nil)

	assert.True(t, got[0].Selected)
	assert.False(t, got[1].Selected)
}

func TestFormatDays_PreservesSelectedDate(t *testing.T) {
	days := daysFixture(date(2025, 5, 10), date(2025, 5, 11), date(2025, 5, 12))
	sel := date(2025, 5, 11)

	got := domain.FormatDays(days, &sel)

	assert.False(t, got[0].Selected)
	assert.True(t, got[1].Selected)
	assert.False(t, got[2].Selected)
}

func TestFormatDays_UnknownSelectedFallsBackToFirst(t *testing.T) {
	days := daysFixture(date(2025, 5, 10), date(2025, 5, 11))
	sel := date(2025, 6, 1) // not in the sequence

	got := domain.FormatDays(days, &sel)

	assert.True(t, got[0].Selected)
	assert.False(t, got[1].Selected)
}

func TestFormatDays_Empty(t *testing.T) {
	got := domain.FormatDays(nil, nil)

	assert.Empty(t, got)
}

// ---- Role ------------------------------------------------------------------

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, domain.RoleOwner.AtLeast(domain.RoleOwner))
	assert.True(t, domain.RoleOwner.AtLeast(domain.RoleMember))
	assert.True(t, domain.RoleMember.AtLeast(domain.RoleMember))
	assert.False(t, domain.RoleMember.AtLeast(domain.RoleOwner))
	assert.False(t, domain.RoleNone.AtLeast(domain.RoleMember))
	assert.False(t, domain.RoleNone.AtLeast(domain.RoleOwner))
}
