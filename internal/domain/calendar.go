package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewDate builds a calendar date at midnight UTC from its components.
// All date values in this package flow through here (or through parsing of
// the YYYY-MM-DD wire format), so a date is never reinterpreted in a local
// timezone and can never shift by a day for users west of UTC.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Midnight strips any time-of-day and zone information from t, keeping the
// calendar date as the components read in t's own location.
func Midnight(t time.Time) time.Time {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// SameDate reports whether a and b name the same calendar date,
// ignoring time-of-day and zone.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DatesInRange returns every calendar date from start to end inclusive, in
// ascending order. start == end yields exactly one date. start > end yields
// an empty slice — a caller error, but it must never loop or go negative.
func DatesInRange(start, end time.Time) []time.Time {
	start, end = Midnight(start), Midnight(end)
	if start.After(end) {
		return nil
	}

	// Inclusive day count; AddDate handles month and year rollover.
	n := int(end.Sub(start).Hours()/24) + 1
	dates := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// DisplayDay is one day as rendered in the day strip of the UI.
type DisplayDay struct {
	ID         uuid.UUID
	Date       time.Time
	DayOfMonth int
	MonthLabel string // "JUN" on the first day and on month transitions, else ""
	Plan       string
	Selected   bool
}

// FormatDays converts an ordered day sequence into its display form.
//
// The month label is non-empty only on the first day of the sequence and on
// each day whose month differs from the immediately preceding day's month.
// Exactly one day is marked selected: the one matching selected if that date
// is present, otherwise the first day. Pass selected == nil to select the
// first day.
func FormatDays(days []Day, selected *time.Time) []DisplayDay {
	out := make([]DisplayDay, len(days))

	selIdx := 0
	if selected != nil {
		for i, d := range days {
			if SameDate(d.Date, *selected) {
				selIdx = i
				break
			}
		}
	}

	for i, d := range days {
		label := ""
		if i == 0 || d.Date.Month() != days[i-1].Date.Month() {
			label = monthAbbrev(d.Date.Month())
		}
		out[i] = DisplayDay{
			ID:         d.ID,
			Date:       d.Date,
			DayOfMonth: d.Date.Day(),
			MonthLabel: label,
			Plan:       d.Plan,
			Selected:   i == selIdx,
		}
	}
	return out
}

// monthAbbrev returns the uppercase three-letter English abbreviation,
// e.g. June -> "JUN".
func monthAbbrev(m time.Month) string {
	return strings.ToUpper(m.String()[:3])
}
