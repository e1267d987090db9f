package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is a caller's resolved access level for a trip.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
	RoleNone   Role = "none"
)

// AtLeast reports whether r grants the access level of min.
// Owner satisfies everything; member satisfies member; none satisfies nothing.
func (r Role) AtLeast(min Role) bool {
	switch min {
	case RoleOwner:
		return r == RoleOwner
	case RoleMember:
		return r == RoleOwner || r == RoleMember
	default:
		return false
	}
}

// Membership is a (trip, user) collaboration grant.
// Exactly one owner row exists per trip, created with the trip itself.
type Membership struct {
	TripID    uuid.UUID
	UserID    uuid.UUID
	Role      Role
	CreatedAt time.Time
}

// Member is a membership joined with the member's profile, as shown in the
// trip-sharing list.
type Member struct {
	TripID   uuid.UUID
	UserID   uuid.UUID
	Role     Role
	Email    string
	FullName string
}

// Profile mirrors an identity-provider user. Rows are upserted from verified
// token claims on first contact and are otherwise read-only here.
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	CreatedAt time.Time
}
