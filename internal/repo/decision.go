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

// DecisionRepo defines the persistence operations for decisions.
type DecisionRepo interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Decision, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Decision, error)
	Create(ctx context.Context, d domain.Decision) (domain.Decision, error)
	Update(ctx context.Context, d domain.Decision) (domain.Decision, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDecisionRepo is the Postgres implementation of DecisionRepo.
type pgDecisionRepo struct {
	db db
}

// NewDecisionRepo constructs a DecisionRepo backed by the provided db connection.
func NewDecisionRepo(db db) DecisionRepo {
	return &pgDecisionRepo{db: db}
}

const decisionColumns = `id, trip_id, title, description, status, outcome, created_at, updated_at`

// ListByTrip returns decisions newest first.
func (r *pgDecisionRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Decision, error) {
	const q = `
		SELECT ` + decisionColumns + `
		FROM decisions
		WHERE trip_id = @trip_id
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DecisionRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	items := []domain.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DecisionRepo.ListByTrip: scan: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DecisionRepo.ListByTrip: rows: %w", err)
	}
	return items, nil
}

// GetByID retrieves a decision by primary key.
func (r *pgDecisionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Decision, error) {
	const q = `
		SELECT ` + decisionColumns + `
		FROM decisions
		WHERE id = @id`

	result, err := scanDecision(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Decision{}, fmt.Errorf("repo.DecisionRepo.GetByID: %w", err)
	}
	return result, nil
}

// Create inserts a new decision.
func (r *pgDecisionRepo) Create(ctx context.Context, d domain.Decision) (domain.Decision, error) {
	const q = `
		INSERT INTO decisions (trip_id, title, description, status, outcome)
		VALUES (@trip_id, @title, @description, @status, @outcome)
		RETURNING ` + decisionColumns

	args := pgx.NamedArgs{
		"trip_id":     d.TripID,
		"title":       d.Title,
		"description": d.Description,
		"status":      string(d.Status),
		"outcome":     d.Outcome,
	}

	result, err := scanDecision(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Decision{}, fmt.Errorf("repo.DecisionRepo.Create: %w", err)
	}
	return result, nil
}

// Update overwrites the mutable fields of a decision.
func (r *pgDecisionRepo) Update(ctx context.Context, d domain.Decision) (domain.Decision, error) {
	const q = `
		UPDATE decisions
		SET title       = @title,
		    description = @description,
		    status      = @status,
		    outcome     = @outcome,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + decisionColumns

	args := pgx.NamedArgs{
		"id":          d.ID,
		"title":       d.Title,
		"description": d.Description,
		"status":      string(d.Status),
		"outcome":     d.Outcome,
	}

	result, err := scanDecision(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Decision{}, fmt.Errorf("repo.DecisionRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a decision by primary key.
func (r *pgDecisionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM decisions WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DecisionRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DecisionRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDecision maps a single database row into a domain.Decision.
func scanDecision(s scanner) (domain.Decision, error) {
	var (
		d      domain.Decision
		id     pgtype.UUID
		tripID pgtype.UUID
		status string
	)

	err := s.Scan(&id, &tripID, &d.Title, &d.Description, &status, &d.Outcome, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Decision{}, domain.ErrNotFound
		}
		return domain.Decision{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	d.TripID = uuid.UUID(tripID.Bytes)
	d.Status = domain.DecisionStatus(status)
	return d, nil
}
