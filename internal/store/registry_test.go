package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestRegistry_AddUser_SequentialIDs(t *testing.T) {
	r := NewRegistry()

	admin := r.AddUser("Admin", domain.UserRoleAdmin, domain.UserStatusActive)
	sam := r.AddUser("Sam Patel", domain.UserRoleAgent, domain.UserStatusActive)

	assert.Equal(t, 1, admin.ID)
	assert.Equal(t, 2, sam.ID)

	got, ok := r.GetByID(2)
	require.True(t, ok)
	assert.Same(t, sam, got)

	_, ok = r.GetByID(99)
	assert.False(t, ok)
}

func TestRegistry_ListAgentsFirst(t *testing.T) {
	r := NewRegistry()
	r.AddUser("Admin", domain.UserRoleAdmin, domain.UserStatusActive)
	r.AddUser("Sam Patel", domain.UserRoleAgent, domain.UserStatusActive)
	r.AddUser("Dana Kim", domain.UserRoleAgent, domain.UserStatusActive)

	ordered := r.ListAgentsFirst()
	require.Len(t, ordered, 3)
	assert.Equal(t, "Sam Patel", ordered[0].Name)
	assert.Equal(t, "Dana Kim", ordered[1].Name)
	assert.Equal(t, "Admin", ordered[2].Name)
}

func TestRegistry_ListActiveExcluding(t *testing.T) {
	r := NewRegistry()
	sam := r.AddUser("Sam", domain.UserRoleAgent, domain.UserStatusActive)
	r.AddUser("Dana", domain.UserRoleAgent, domain.UserStatusActive)
	r.AddUser("Idle Ivan", domain.UserRoleAgent, domain.UserStatusInactive)

	candidates := r.ListActiveExcluding(sam)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Dana", candidates[0].Name)

	all := r.ListActiveExcluding(nil)
	require.Len(t, all, 2)
}

func TestRegistry_NameOf(t *testing.T) {
	r := NewRegistry()
	sam := r.AddUser("Sam", domain.UserRoleAgent, domain.UserStatusActive)

	assert.Equal(t, "Sam", r.NameOf(&sam.ID))
	assert.Equal(t, "", r.NameOf(nil))
	unknown := 42
	assert.Equal(t, "", r.NameOf(&unknown))
}

func TestSeed_LoadsDefaults(t *testing.T) {
	r := NewRegistry()
	tickets := New[*domain.Ticket]()
	tasks := New[*domain.Task]()

	SeedUsers(r)
	SeedTickets(tickets)
	SeedTasks(tasks)

	require.Len(t, r.ListUsers(), 3)
	assert.Equal(t, 5, tickets.Len())
	assert.Equal(t, 2, tasks.Len())

	first, ok := tickets.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Cannot log in to portal", first.Subject)
	assert.Equal(t, 5, tickets.Stats().Created)
}
