package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	registry := store.NewRegistry()
	tickets := store.New[*domain.Ticket]()
	tasks := store.New[*domain.Task]()
	articles := store.NewArticleStore()
	dispatcher := events.NewSyncDispatcher()
	logger := zap.NewNop()
	var ticketOps, taskOps sync.Mutex

	store.SeedUsers(registry)
	store.SeedTickets(tickets)
	store.SeedTasks(tasks)

	deps := Deps{
		AppName:  "helpdesk",
		Registry: registry,
		Tickets:  tickets,
		Tasks:    tasks,
		TicketClaims: service.NewClaimService(service.ClaimDependencies[*domain.Ticket]{
			Kind: domain.KindTicket, Items: tickets, Registry: registry,
			Dispatcher: dispatcher, Logger: logger, OpLock: &ticketOps,
		}),
		TaskClaims: service.NewClaimService(service.ClaimDependencies[*domain.Task]{
			Kind: domain.KindTask, Items: tasks, Registry: registry,
			Dispatcher: dispatcher, Logger: logger, OpLock: &taskOps,
		}),
		TicketLifecycle: service.NewLifecycleService(service.LifecycleDependencies[*domain.Ticket]{
			Kind: domain.KindTicket, Items: tickets, Registry: registry,
			Dispatcher: dispatcher, Logger: logger, OpLock: &ticketOps,
		}),
		TaskLifecycle: service.NewLifecycleService(service.LifecycleDependencies[*domain.Task]{
			Kind: domain.KindTask, Items: tasks, Registry: registry,
			Dispatcher: dispatcher, Logger: logger, OpLock: &taskOps,
		}),
		Articles: service.NewArticleService(articles, tickets, dispatcher, logger),
		Stats:    service.NewStatsService(tickets, tasks),
		Logger:   logger,
	}
	return New(deps)
}

func press(m *Model, runes string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)})
}

func pressEnter(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestLogin_SelectsFromAgentsFirstRoster(t *testing.T) {
	m := newTestModel(t)

	// roster order is Sam Patel, Dana Kim, Admin
	press(m, "j")
	pressEnter(m)

	require.NotNil(t, m.current)
	assert.Equal(t, "Dana Kim", m.current.Name)
	assert.Equal(t, screenTabs, m.screen)
	assert.Equal(t, tabTickets, m.tab)
}

func TestTabs_DigitsSwitchTabs(t *testing.T) {
	m := newTestModel(t)
	pressEnter(m) // login as Sam Patel

	press(m, "2")
	assert.Equal(t, tabTasks, m.tab)
	press(m, "5")
	assert.Equal(t, tabDashboard, m.tab)
	press(m, "1")
	assert.Equal(t, tabTickets, m.tab)
}

func TestTickets_ClaimAndResolveFromList(t *testing.T) {
	m := newTestModel(t)
	pressEnter(m) // login as Sam Patel
	sam := m.current

	press(m, "c")
	first, ok := m.deps.Tickets.Get(1)
	require.True(t, ok)
	require.NotNil(t, first.AssigneeID())
	assert.Equal(t, sam.ID, *first.AssigneeID())
	assert.Equal(t, []int{1}, sam.ClaimedTickets)

	press(m, "s")
	_, ok = m.deps.Tickets.Get(1)
	assert.False(t, ok)
	assert.Empty(t, sam.ClaimedTickets)
	assert.Equal(t, 1, m.deps.Tickets.Stats().Resolved)
}

func TestTickets_ReassignFlow(t *testing.T) {
	m := newTestModel(t)
	pressEnter(m) // login as Sam Patel
	sam := m.current

	press(m, "c")
	press(m, "r")
	assert.Equal(t, itemModeReassign, m.tickets.mode)

	// candidates exclude Sam and keep registry order: Admin, Dana Kim
	press(m, "j")
	pressEnter(m)
	assert.Equal(t, itemModeList, m.tickets.mode)

	first, ok := m.deps.Tickets.Get(1)
	require.True(t, ok)
	var dana *domain.User
	for _, u := range m.deps.Registry.ListUsers() {
		if u.Name == "Dana Kim" {
			dana = u
		}
	}
	require.NotNil(t, dana)
	require.NotNil(t, first.AssigneeID())
	assert.Equal(t, dana.ID, *first.AssigneeID())
	assert.Empty(t, sam.ClaimedTickets)
	assert.Equal(t, []int{1}, dana.ClaimedTickets)
}

func TestSwitchUser_ReturnsToLogin(t *testing.T) {
	m := newTestModel(t)
	pressEnter(m)
	require.Equal(t, screenTabs, m.screen)

	press(m, "w")
	assert.Equal(t, screenLogin, m.screen)
	assert.Nil(t, m.current)
}
