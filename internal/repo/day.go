package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// DayRepo defines the persistence operations for Days.
type DayRepo interface {
	// ListByTrip returns all days for a trip ordered by date ascending.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error)

	// GetByID retrieves a single day by its UUID primary key.
	// Returns domain.ErrNotFound if no day with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error)

	// CountByTrip returns the number of day rows for a trip.
	// Materialization uses this as its create-if-absent guard.
	CountByTrip(ctx context.Context, tripID uuid.UUID) (int64, error)

	// InsertMissing inserts one row per date with an empty plan, skipping
	// dates that already exist for the trip. Two racing materializations
	// therefore cannot duplicate rows: the loser's conflicting inserts are
	// simply no-ops on the (trip_id, date) unique constraint.
	InsertMissing(ctx context.Context, tripID uuid.UUID, dates []time.Time) error

	// UpsertByDate inserts a day or, when (trip_id, date) already exists,
	// updates its plan in place. Returns the persisted row either way.
	UpsertByDate(ctx context.Context, day domain.Day) (domain.Day, error)

	// UpdatePlan replaces the plan text of an existing day.
	// Returns domain.ErrNotFound if the day does not exist.
	UpdatePlan(ctx context.Context, id uuid.UUID, plan string) (domain.Day, error)

	// Delete removes a day by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDayRepo is the Postgres implementation of DayRepo.
type pgDayRepo struct {
	db db
}

// NewDayRepo constructs a DayRepo backed by the provided db connection.
func NewDayRepo(db db) DayRepo {
	return &pgDayRepo{db: db}
}

const dayColumns = `id, trip_id, date, plan, created_at, updated_at`

// ListByTrip returns all days for a trip in calendar order.
func (r *pgDayRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Day, error) {
	const q = `
		SELECT ` + dayColumns + `
		FROM days
		WHERE trip_id = @trip_id
		ORDER BY date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	days := []domain.Day{}
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayRepo.ListByTrip: scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayRepo.ListByTrip: rows: %w", err)
	}
	return days, nil
}

// GetByID retrieves a day by primary key.
func (r *pgDayRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Day, error) {
	const q = `
		SELECT ` + dayColumns + `
		FROM days
		WHERE id = @id`

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.GetByID: %w", err)
	}
	return result, nil
}

// CountByTrip returns the number of day rows for a trip.
func (r *pgDayRepo) CountByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	const q = `SELECT count(*) FROM days WHERE trip_id = @trip_id`

	var n int64
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.DayRepo.CountByTrip: %w", err)
	}
	return n, nil
}

// InsertMissing bulk-inserts empty-plan day rows, one per date.
// unnest keeps it a single statement regardless of range length.
func (r *pgDayRepo) InsertMissing(ctx context.Context, tripID uuid.UUID, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	const q = `
		INSERT INTO days (trip_id, date, plan)
		SELECT @trip_id, d, ''
		FROM unnest(@dates::date[]) AS d
		ON CONFLICT (trip_id, date) DO NOTHING`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "dates": dates})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.InsertMissing: %w", err)
	}
	return nil
}

// UpsertByDate inserts or updates a day keyed on (trip_id, date).
func (r *pgDayRepo) UpsertByDate(ctx context.Context, day domain.Day) (domain.Day, error) {
	const q = `
		INSERT INTO days (trip_id, date, plan)
		VALUES (@trip_id, @date, @plan)
		ON CONFLICT (trip_id, date) DO UPDATE SET plan = EXCLUDED.plan, updated_at = now()
		RETURNING ` + dayColumns

	args := pgx.NamedArgs{
		"trip_id": day.TripID,
		"date":    day.Date,
		"plan":    day.Plan,
	}

	result, err := scanDay(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.UpsertByDate: %w", err)
	}
	return result, nil
}

// UpdatePlan replaces the plan of an existing day.
func (r *pgDayRepo) UpdatePlan(ctx context.Context, id uuid.UUID, plan string) (domain.Day, error) {
	const q = `
		UPDATE days
		SET plan = @plan, updated_at = now()
		WHERE id = @id
		RETURNING ` + dayColumns

	result, err := scanDay(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "plan": plan}))
	if err != nil {
		return domain.Day{}, fmt.Errorf("repo.DayRepo.UpdatePlan: %w", err)
	}
	return result, nil
}

// Delete removes a day by primary key.
func (r *pgDayRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM days WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DayRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DayRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDay maps a single database row into a domain.Day.
func scanDay(s scanner) (domain.Day, error) {
	var (
		d      domain.Day
		id     pgtype.UUID
		tripID pgtype.UUID
		date   pgtype.Date
	)

	err := s.Scan(&id, &tripID, &date, &d.Plan, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Day{}, domain.ErrNotFound
		}
		return domain.Day{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Date = date.Time
	return d, nil
}
