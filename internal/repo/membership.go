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

// MembershipRepo defines the persistence operations for trip memberships.
type MembershipRepo interface {
	// Get returns the membership row for (tripID, userID).
	// Returns domain.ErrNotFound when the user has no explicit membership.
	Get(ctx context.Context, tripID, userID uuid.UUID) (domain.Membership, error)

	// ListByTrip returns all members of a trip joined with their profiles,
	// owner first, then members ordered by join time.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error)

	// Add inserts a membership row with the given role.
	// Fails on the (trip_id, user_id) primary key if the user is already a member.
	Add(ctx context.Context, m domain.Membership) (domain.Membership, error)

	// Remove deletes the membership row for (tripID, userID).
	// Returns domain.ErrNotFound if no such row exists.
	Remove(ctx context.Context, tripID, userID uuid.UUID) error
}

// pgMembershipRepo is the Postgres implementation of MembershipRepo.
type pgMembershipRepo struct {
	db db
}

// NewMembershipRepo constructs a MembershipRepo backed by the provided db connection.
func NewMembershipRepo(db db) MembershipRepo {
	return &pgMembershipRepo{db: db}
}

// Get returns the explicit membership row, if any.
func (r *pgMembershipRepo) Get(ctx context.Context, tripID, userID uuid.UUID) (domain.Membership, error) {
	const q = `
		SELECT trip_id, user_id, role, created_at
		FROM trip_members
		WHERE trip_id = @trip_id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": userID})
	result, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, fmt.Errorf("repo.MembershipRepo.Get: %w", err)
	}
	return result, nil
}

// ListByTrip returns members with profile display data for the sharing list.
func (r *pgMembershipRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Member, error) {
	const q = `
		SELECT m.trip_id, m.user_id, m.role, p.email, p.full_name
		FROM trip_members m
		JOIN profiles p ON p.id = m.user_id
		WHERE m.trip_id = @trip_id
		ORDER BY (m.role = 'owner') DESC, m.created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.MembershipRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var (
			m      domain.Member
			tid    pgtype.UUID
			uid    pgtype.UUID
			role   string
		)
		if err := rows.Scan(&tid, &uid, &role, &m.Email, &m.FullName); err != nil {
			return nil, fmt.Errorf("repo.MembershipRepo.ListByTrip: scan: %w", err)
		}
		m.TripID = uuid.UUID(tid.Bytes)
		m.UserID = uuid.UUID(uid.Bytes)
		m.Role = domain.Role(role)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.MembershipRepo.ListByTrip: rows: %w", err)
	}
	return members, nil
}

// Add inserts a membership row.
func (r *pgMembershipRepo) Add(ctx context.Context, m domain.Membership) (domain.Membership, error) {
	const q = `
		INSERT INTO trip_members (trip_id, user_id, role)
		VALUES (@trip_id, @user_id, @role)
		RETURNING trip_id, user_id, role, created_at`

	args := pgx.NamedArgs{
		"trip_id": m.TripID,
		"user_id": m.UserID,
		"role":    string(m.Role),
	}

	result, err := scanMembership(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Membership{}, fmt.Errorf("repo.MembershipRepo.Add: %w", err)
	}
	return result, nil
}

// Remove deletes a membership row.
func (r *pgMembershipRepo) Remove(ctx context.Context, tripID, userID uuid.UUID) error {
	const q = `DELETE FROM trip_members WHERE trip_id = @trip_id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.MembershipRepo.Remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.MembershipRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// scanMembership maps a single database row into a domain.Membership.
func scanMembership(s scanner) (domain.Membership, error) {
	var (
		m    domain.Membership
		tid  pgtype.UUID
		uid  pgtype.UUID
		role string
	)

	err := s.Scan(&tid, &uid, &role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Membership{}, domain.ErrNotFound
		}
		return domain.Membership{}, err
	}

	m.TripID = uuid.UUID(tid.Bytes)
	m.UserID = uuid.UUID(uid.Bytes)
	m.Role = domain.Role(role)
	return m, nil
}
