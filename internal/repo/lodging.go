package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkeller/tripboard/backend/internal/domain"
)

// LodgingRepo defines the persistence operations for lodging entries.
type LodgingRepo interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error)
	Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgLodgingRepo is the Postgres implementation of LodgingRepo.
type pgLodgingRepo struct {
	db db
}

// NewLodgingRepo constructs a LodgingRepo backed by the provided db connection.
func NewLodgingRepo(db db) LodgingRepo {
	return &pgLodgingRepo{db: db}
}

const lodgingColumns = `id, trip_id, name, address, check_in, check_out, notes, created_at, updated_at`

// ListByTrip returns lodging entries ordered by check-in date, unbooked last.
func (r *pgLodgingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
	const q = `
		SELECT ` + lodgingColumns + `
		FROM lodging
		WHERE trip_id = @trip_id
		ORDER BY check_in ASC NULLS LAST, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	items := []domain.Lodging{}
	for rows.Next() {
		l, err := scanLodging(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LodgingRepo.ListByTrip: scan: %w", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.ListByTrip: rows: %w", err)
	}
	return items, nil
}

// GetByID retrieves a lodging entry by primary key.
func (r *pgLodgingRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Lodging, error) {
	const q = `
		SELECT ` + lodgingColumns + `
		FROM lodging
		WHERE id = @id`

	result, err := scanLodging(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.GetByID: %w", err)
	}
	return result, nil
}

// Create inserts a new lodging entry.
func (r *pgLodgingRepo) Create(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	const q = `
		INSERT INTO lodging (trip_id, name, address, check_in, check_out, notes)
		VALUES (@trip_id, @name, @address, @check_in, @check_out, @notes)
		RETURNING ` + lodgingColumns

	args := pgx.NamedArgs{
		"trip_id":   l.TripID,
		"name":      l.Name,
		"address":   l.Address,
		"check_in":  l.CheckIn,
		"check_out": l.CheckOut,
		"notes":     l.Notes,
	}

	result, err := scanLodging(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.Create: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a lodging entry.
func (r *pgLodgingRepo) Update(ctx context.Context, l domain.Lodging) (domain.Lodging, error) {
	const q = `
		UPDATE lodging
		SET name       = @name,
		    address    = @address,
		    check_in   = @check_in,
		    check_out  = @check_out,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + lodgingColumns

	args := pgx.NamedArgs{
		"id":        l.ID,
		"name":      l.Name,
		"address":   l.Address,
		"check_in":  l.CheckIn,
		"check_out": l.CheckOut,
		"notes":     l.Notes,
	}

	result, err := scanLodging(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Lodging{}, fmt.Errorf("repo.LodgingRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a lodging entry by primary key.
func (r *pgLodgingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM lodging WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.LodgingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.LodgingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanLodging maps a single database row into a domain.Lodging.
func scanLodging(s scanner) (domain.Lodging, error) {
	var (
		l        domain.Lodging
		id       pgtype.UUID
		tripID   pgtype.UUID
		checkIn  pgtype.Date
		checkOut pgtype.Date
	)

	err := s.Scan(&id, &tripID, &l.Name, &l.Address, &checkIn, &checkOut, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lodging{}, domain.ErrNotFound
		}
		return domain.Lodging{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.TripID = uuid.UUID(tripID.Bytes)
	if checkIn.Valid {
		ci := checkIn.Time
		l.CheckIn = &ci
	}
	if checkOut.Valid {
		co := checkOut.Time
		l.CheckOut = &co
	}
	return l, nil
}
