package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/store"
)

func TestStats_OverviewTracksBothFamilies(t *testing.T) {
	env := newTicketEnv(t)
	tasks := store.New[*domain.Task]()
	stats := NewStatsService(env.tickets, tasks)
	ctx := context.Background()

	env.seedTicket("one")
	env.seedTicket("two")
	tasks.Create(&domain.Task{Title: "restock toner"})

	_, err := env.lifecycle.SetStatus(ctx, 1, domain.ItemStatusResolved, env.sam)
	require.NoError(t, err)

	overview := stats.Overview()
	assert.Equal(t, 2, overview.Tickets.Created)
	assert.Equal(t, 1, overview.Tickets.Resolved)
	assert.Equal(t, 1, overview.Tickets.Open)
	assert.Equal(t, 1, overview.Tasks.Created)
	assert.Equal(t, 1, overview.Tasks.Open)
	assert.Equal(t, 0, overview.Tasks.Resolved)
}
