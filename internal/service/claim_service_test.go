package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/events"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util"
)

type ticketEnv struct {
	registry  *store.Registry
	tickets   *store.Store[*domain.Ticket]
	claims    *ClaimService[*domain.Ticket]
	lifecycle *LifecycleService[*domain.Ticket]
	admin     *domain.User
	sam       *domain.User
	dana      *domain.User
}

func newTicketEnv(t *testing.T) *ticketEnv {
	t.Helper()
	registry := store.NewRegistry()
	tickets := store.New[*domain.Ticket]()
	dispatcher := events.NewSyncDispatcher()
	logger := zap.NewNop()
	ops := &sync.Mutex{}

	env := &ticketEnv{
		registry: registry,
		tickets:  tickets,
		claims: NewClaimService(ClaimDependencies[*domain.Ticket]{
			Kind:       domain.KindTicket,
			Items:      tickets,
			Registry:   registry,
			Dispatcher: dispatcher,
			Logger:     logger,
			OpLock:     ops,
		}),
		lifecycle: NewLifecycleService(LifecycleDependencies[*domain.Ticket]{
			Kind:       domain.KindTicket,
			Items:      tickets,
			Registry:   registry,
			Dispatcher: dispatcher,
			Logger:     logger,
			OpLock:     ops,
		}),
	}
	env.admin = registry.AddUser("Admin", domain.UserRoleAdmin, domain.UserStatusActive)
	env.sam = registry.AddUser("Sam", domain.UserRoleAgent, domain.UserStatusActive)
	env.dana = registry.AddUser("Dana", domain.UserRoleAgent, domain.UserStatusActive)
	return env
}

func (e *ticketEnv) seedTicket(subject string) *domain.Ticket {
	return e.tickets.Create(&domain.Ticket{Subject: subject, Requester: "Taylor", Priority: domain.TicketPriorityHigh})
}

func TestClaim_NotFound(t *testing.T) {
	env := newTicketEnv(t)

	_, err := env.claims.Claim(context.Background(), 42, env.sam)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Empty(t, env.sam.ClaimedTickets)
}

func TestClaim_SetsBothSides(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Cannot log in to portal")

	claimed, err := env.claims.Claim(context.Background(), ticket.ItemID(), env.sam)
	require.NoError(t, err)

	require.NotNil(t, claimed.AssigneeID())
	assert.Equal(t, env.sam.ID, *claimed.AssigneeID())
	assert.Equal(t, []int{ticket.ItemID()}, env.sam.ClaimedTickets)
}

func TestClaim_Idempotent(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Email not syncing")
	ctx := context.Background()

	_, err := env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)
	_, err = env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)

	assert.Equal(t, []int{ticket.ItemID()}, env.sam.ClaimedTickets)
	assert.Equal(t, env.sam.ID, *ticket.AssigneeID())
}

func TestClaim_ReclaimMovesOwnership(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("VPN not connecting")
	ctx := context.Background()

	_, err := env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)
	_, err = env.claims.Claim(ctx, ticket.ItemID(), env.dana)
	require.NoError(t, err)

	assert.Empty(t, env.sam.ClaimedTickets, "previous holder's set is scrubbed")
	assert.Equal(t, []int{ticket.ItemID()}, env.dana.ClaimedTickets)
	assert.Equal(t, env.dana.ID, *ticket.AssigneeID())
}

func TestUnclaim_NeverFailsForNonHolder(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Slow laptop")

	err := env.claims.Unclaim(context.Background(), ticket.ItemID(), env.dana)
	require.NoError(t, err)
	assert.Nil(t, ticket.AssigneeID())
}

func TestUnclaim_ClearsOwnershipKeepsAudit(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Request new mouse")
	ctx := context.Background()

	_, err := env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)
	require.NoError(t, env.claims.Unclaim(ctx, ticket.ItemID(), env.sam))

	assert.Empty(t, env.sam.ClaimedTickets)
	assert.Nil(t, ticket.AssigneeID())
	require.NotNil(t, ticket.LastAssigneeID())
	assert.Equal(t, env.sam.ID, *ticket.LastAssigneeID())
}

func TestCandidates_ExcludesCurrentUser(t *testing.T) {
	env := newTicketEnv(t)

	candidates := env.claims.Candidates(env.sam)
	require.Len(t, candidates, 2)
	for _, candidate := range candidates {
		assert.NotEqual(t, env.sam.ID, candidate.ID)
	}
}

func TestCandidates_FallsBackWhenExclusionEmptiesList(t *testing.T) {
	registry := store.NewRegistry()
	tickets := store.New[*domain.Ticket]()
	claims := NewClaimService(ClaimDependencies[*domain.Ticket]{
		Kind:     domain.KindTicket,
		Items:    tickets,
		Registry: registry,
		Logger:   zap.NewNop(),
		OpLock:   &sync.Mutex{},
	})
	solo := registry.AddUser("Solo", domain.UserRoleAgent, domain.UserStatusActive)

	candidates := claims.Candidates(solo)
	require.Len(t, candidates, 1)
	assert.Equal(t, solo.ID, candidates[0].ID)
}

func TestReassign_TransfersOwnership(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Cannot log in to portal")
	ctx := context.Background()

	_, err := env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)

	reassigned, err := env.claims.Reassign(ctx, ticket.ItemID(), env.dana, env.sam)
	require.NoError(t, err)

	assert.Empty(t, env.sam.ClaimedTickets)
	assert.Equal(t, []int{ticket.ItemID()}, env.dana.ClaimedTickets)
	assert.Equal(t, env.dana.ID, *reassigned.AssigneeID())
}

func TestReassign_RejectsTargetOutsideCandidateList(t *testing.T) {
	env := newTicketEnv(t)
	ticket := env.seedTicket("Email not syncing")
	ctx := context.Background()
	inactive := env.registry.AddUser("Idle Ivan", domain.UserRoleAgent, domain.UserStatusInactive)

	_, err := env.claims.Claim(ctx, ticket.ItemID(), env.sam)
	require.NoError(t, err)

	_, err = env.claims.Reassign(ctx, ticket.ItemID(), inactive, env.sam)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotInCandidateSet(err))

	// nothing moved
	assert.Equal(t, env.sam.ID, *ticket.AssigneeID())
	assert.Equal(t, []int{ticket.ItemID()}, env.sam.ClaimedTickets)
	assert.Empty(t, inactive.ClaimedTickets)
}

func TestReassign_NotFound(t *testing.T) {
	env := newTicketEnv(t)

	_, err := env.claims.Reassign(context.Background(), 42, env.dana, env.sam)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
