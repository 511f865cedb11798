package domain

import "time"

// UserRole is informational only; no authorization is enforced on it.
type UserRole string

const (
	UserRoleAgent UserRole = "Agent"
	UserRoleAdmin UserRole = "Admin"
)

// UserStatus represents whether a user may appear in assignable candidate lists.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

// User is an agent or admin operating the helpdesk. The claimed-id slices
// are ordered and duplicate-free; membership mirrors the work items whose
// assignee id equals this user's id and that are still in a store.
type User struct {
	ID             int
	Name           string
	Role           UserRole
	Status         UserStatus
	ClaimedTickets []int
	ClaimedTasks   []int
	CreatedAt      time.Time
}

// ClaimedIDs returns the claimed-id set for the given kind.
func (u *User) ClaimedIDs(kind ItemKind) []int {
	if kind == KindTask {
		return u.ClaimedTasks
	}
	return u.ClaimedTickets
}

// AddClaim appends id to the kind's claimed set. Returns false when the id
// was already present.
func (u *User) AddClaim(kind ItemKind, id int) bool {
	set := u.ClaimedIDs(kind)
	for _, existing := range set {
		if existing == id {
			return false
		}
	}
	u.setClaimedIDs(kind, append(set, id))
	return true
}

// RemoveClaim drops id from the kind's claimed set. Returns false when the
// id was not present; that is a normal outcome, not an error.
func (u *User) RemoveClaim(kind ItemKind, id int) bool {
	set := u.ClaimedIDs(kind)
	for i, existing := range set {
		if existing == id {
			u.setClaimedIDs(kind, append(set[:i:i], set[i+1:]...))
			return true
		}
	}
	return false
}

// HoldsClaim reports whether id is in the kind's claimed set.
func (u *User) HoldsClaim(kind ItemKind, id int) bool {
	for _, existing := range u.ClaimedIDs(kind) {
		if existing == id {
			return true
		}
	}
	return false
}

func (u *User) setClaimedIDs(kind ItemKind, ids []int) {
	if kind == KindTask {
		u.ClaimedTasks = ids
		return
	}
	u.ClaimedTickets = ids
}
