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

// ProfileRepo defines the persistence operations for identity-provider profiles.
type ProfileRepo interface {
	// Upsert inserts the profile or refreshes email/full_name on an existing
	// row. The ID comes from the identity provider and never changes.
	Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error)

	// GetByID retrieves a profile by its identity-provider UUID.
	// Returns domain.ErrNotFound if no such profile exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error)

	// List returns all profiles ordered by email, for the member directory.
	List(ctx context.Context) ([]domain.Profile, error)
}

// pgProfileRepo is the Postgres implementation of ProfileRepo.
type pgProfileRepo struct {
	db db
}

// NewProfileRepo constructs a ProfileRepo backed by the provided db connection.
func NewProfileRepo(db db) ProfileRepo {
	return &pgProfileRepo{db: db}
}

// Upsert inserts or refreshes a profile row keyed on the provider ID.
func (r *pgProfileRepo) Upsert(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	const q = `
		INSERT INTO profiles (id, email, full_name)
		VALUES (@id, @email, @full_name)
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, full_name = EXCLUDED.full_name
		RETURNING id, email, full_name, created_at`

	args := pgx.NamedArgs{
		"id":        p.ID,
		"email":     p.Email,
		"full_name": p.FullName,
	}

	result, err := scanProfile(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.Upsert: %w", err)
	}
	return result, nil
}

// GetByID retrieves a profile by primary key.
func (r *pgProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	const q = `
		SELECT id, email, full_name, created_at
		FROM profiles
		WHERE id = @id`

	result, err := scanProfile(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("repo.ProfileRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all profiles ordered by email.
func (r *pgProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	const q = `
		SELECT id, email, full_name, created_at
		FROM profiles
		ORDER BY email`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ProfileRepo.List: %w", err)
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ProfileRepo.List: scan: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ProfileRepo.List: rows: %w", err)
	}
	return profiles, nil
}

// scanProfile maps a single database row into a domain.Profile.
func scanProfile(s scanner) (domain.Profile, error) {
	var (
		p  domain.Profile
		id pgtype.UUID
	)

	err := s.Scan(&id, &p.Email, &p.FullName, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, domain.ErrNotFound
		}
		return domain.Profile{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
