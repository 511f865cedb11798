package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func newTicket(subject string) *domain.Ticket {
	return &domain.Ticket{Subject: subject, Requester: "Taylor", Priority: domain.TicketPriorityNormal}
}

func TestStore_Create_AssignsSequentialIDs(t *testing.T) {
	s := New[*domain.Ticket]()

	first := s.Create(newTicket("one"))
	second := s.Create(newTicket("two"))
	third := s.Create(newTicket("three"))

	assert.Equal(t, 1, first.ItemID())
	assert.Equal(t, 2, second.ItemID())
	assert.Equal(t, 3, third.ItemID())
	assert.Equal(t, domain.ItemStatusOpen, first.ItemStatus())
	assert.Nil(t, first.AssigneeID())
}

func TestStore_Create_IDRestartsWhenEmptied(t *testing.T) {
	s := New[*domain.Ticket]()

	s.Create(newTicket("one"))
	s.Create(newTicket("two"))
	require.True(t, s.Resolve(1))
	require.True(t, s.Resolve(2))

	fresh := s.Create(newTicket("after the flood"))
	assert.Equal(t, 1, fresh.ItemID())
}

func TestStore_Create_IDIsMaxPlusOneAfterGaps(t *testing.T) {
	s := New[*domain.Ticket]()

	s.Create(newTicket("one"))
	s.Create(newTicket("two"))
	s.Create(newTicket("three"))
	require.True(t, s.Resolve(3))

	next := s.Create(newTicket("four"))
	assert.Equal(t, 3, next.ItemID())
}

func TestStore_Get_AbsenceIsNotAnError(t *testing.T) {
	s := New[*domain.Ticket]()

	_, ok := s.Get(99)
	assert.False(t, ok)

	created := s.Create(newTicket("found"))
	got, ok := s.Get(created.ItemID())
	require.True(t, ok)
	assert.Same(t, created, got)
}

func TestStore_Assign_SetsHolderAndAudit(t *testing.T) {
	s := New[*domain.Ticket]()
	ticket := s.Create(newTicket("one"))

	require.True(t, s.Assign(ticket.ItemID(), 7))
	require.NotNil(t, ticket.AssigneeID())
	assert.Equal(t, 7, *ticket.AssigneeID())

	assert.False(t, s.Assign(99, 7))
}

func TestStore_Unassign_OnlyCurrentHolderClears(t *testing.T) {
	s := New[*domain.Ticket]()
	ticket := s.Create(newTicket("one"))
	require.True(t, s.Assign(ticket.ItemID(), 7))

	assert.False(t, s.Unassign(ticket.ItemID(), 8))
	require.NotNil(t, ticket.AssigneeID())

	require.True(t, s.Unassign(ticket.ItemID(), 7))
	assert.Nil(t, ticket.AssigneeID())
	require.NotNil(t, ticket.LastAssigneeID())
	assert.Equal(t, 7, *ticket.LastAssigneeID())
	assert.False(t, s.Unassign(99, 7))
}

func TestStore_ForEachActive_VisitsInInsertionOrder(t *testing.T) {
	s := New[*domain.Ticket]()
	s.Create(newTicket("a"))
	s.Create(newTicket("b"))
	require.True(t, s.Resolve(1))

	var subjects []string
	s.ForEachActive(func(ticket *domain.Ticket) {
		subjects = append(subjects, ticket.Subject)
	})
	assert.Equal(t, []string{"b"}, subjects)
}

func TestStore_ListActive_InsertionOrder(t *testing.T) {
	s := New[*domain.Ticket]()

	s.Create(newTicket("a"))
	s.Create(newTicket("b"))
	s.Create(newTicket("c"))
	require.True(t, s.Resolve(2))

	active := s.ListActive()
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Subject)
	assert.Equal(t, "c", active[1].Subject)
}

func TestStore_Resolve_UpdatesCountersAndRemoves(t *testing.T) {
	s := New[*domain.Ticket]()
	s.Create(newTicket("one"))
	s.Create(newTicket("two"))

	require.True(t, s.Resolve(1))

	_, ok := s.Get(1)
	assert.False(t, ok)
	stats := s.Stats()
	assert.Equal(t, 2, stats.Created)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 0, stats.Deleted)
	assert.Equal(t, 1, stats.Open)

	assert.False(t, s.Resolve(1), "resolving an absent id is a no-op")
}

func TestStore_Delete_IncrementsDeletedNotResolved(t *testing.T) {
	s := New[*domain.Ticket]()
	s.Create(newTicket("one"))

	require.True(t, s.Delete(1))

	stats := s.Stats()
	assert.Equal(t, 1, stats.Deleted)
	assert.Equal(t, 0, stats.Resolved)
	assert.Equal(t, 0, stats.Open)
	assert.False(t, s.Delete(1))
}

func TestStore_Stats_OpenAlwaysDerivesFromSize(t *testing.T) {
	s := New[*domain.Task]()

	check := func() {
		assert.Equal(t, len(s.ListActive()), s.Stats().Open)
	}

	check()
	s.Create(&domain.Task{Title: "t1"})
	check()
	s.Create(&domain.Task{Title: "t2"})
	check()
	s.Resolve(1)
	check()
	s.Create(&domain.Task{Title: "t3"})
	check()
	s.Resolve(2)
	s.Resolve(3)
	check()
}
