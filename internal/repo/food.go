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

// FoodRepo defines the persistence operations for food spots.
type FoodRepo interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FoodSpot, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.FoodSpot, error)
	Create(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error)
	Update(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgFoodRepo is the Postgres implementation of FoodRepo.
type pgFoodRepo struct {
	db db
}

// NewFoodRepo constructs a FoodRepo backed by the provided db connection.
func NewFoodRepo(db db) FoodRepo {
	return &pgFoodRepo{db: db}
}

const foodColumns = `id, trip_id, name, location, cuisine, link, notes, created_at, updated_at`

// ListByTrip returns food spots newest first.
func (r *pgFoodRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.FoodSpot, error) {
	const q = `
		SELECT ` + foodColumns + `
		FROM food_spots
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.FoodRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	items := []domain.FoodSpot{}
	for rows.Next() {
		f, err := scanFoodSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FoodRepo.ListByTrip: scan: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FoodRepo.ListByTrip: rows: %w", err)
	}
	return items, nil
}

// GetByID retrieves a food spot by primary key.
func (r *pgFoodRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.FoodSpot, error) {
	const q = `
		SELECT ` + foodColumns + `
		FROM food_spots
		WHERE id = @id`

	result, err := scanFoodSpot(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("repo.FoodRepo.GetByID: %w", err)
	}
	return result, nil
}

// Create inserts a new food spot.
func (r *pgFoodRepo) Create(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error) {
	const q = `
		INSERT INTO food_spots (trip_id, name, location, cuisine, link, notes)
		VALUES (@trip_id, @name, @location, @cuisine, @link, @notes)
		RETURNING ` + foodColumns

	args := pgx.NamedArgs{
		"trip_id":  f.TripID,
		"name":     f.Name,
		"location": f.Location,
		"cuisine":  f.Cuisine,
		"link":     f.Link,
		"notes":    f.Notes,
	}

	result, err := scanFoodSpot(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("repo.FoodRepo.Create: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a food spot.
func (r *pgFoodRepo) Update(ctx context.Context, f domain.FoodSpot) (domain.FoodSpot, error) {
	const q = `
		UPDATE food_spots
		SET name       = @name,
		    location   = @location,
		    cuisine    = @cuisine,
		    link       = @link,
		    notes      = @notes,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + foodColumns

	args := pgx.NamedArgs{
		"id":       f.ID,
		"name":     f.Name,
		"location": f.Location,
		"cuisine":  f.Cuisine,
		"link":     f.Link,
		"notes":    f.Notes,
	}

	result, err := scanFoodSpot(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.FoodSpot{}, fmt.Errorf("repo.FoodRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a food spot by primary key.
func (r *pgFoodRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM food_spots WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.FoodRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.FoodRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanFoodSpot maps a single database row into a domain.FoodSpot.
func scanFoodSpot(s scanner) (domain.FoodSpot, error) {
	var (
		f      domain.FoodSpot
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &f.Name, &f.Location, &f.Cuisine, &f.Link, &f.Notes, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.FoodSpot{}, domain.ErrNotFound
		}
		return domain.FoodSpot{}, err
	}

	f.ID = uuid.UUID(id.Bytes)
	f.TripID = uuid.UUID(tripID.Bytes)
	return f, nil
}
