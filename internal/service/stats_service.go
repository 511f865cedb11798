package service

import (
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/store"
)

// Overview aggregates both stores' projections for the dashboard.
type Overview struct {
	Tickets store.Stats `json:"tickets"`
	Tasks   store.Stats `json:"tasks"`
}

// StatsService is the read-only stats projection consumed by the dashboard
// tab and the HTTP dashboard surface. No caching; every read recomputes
// from the stores.
type StatsService struct {
	tickets *store.Store[*domain.Ticket]
	tasks   *store.Store[*domain.Task]
}

// NewStatsService creates the service.
func NewStatsService(tickets *store.Store[*domain.Ticket], tasks *store.Store[*domain.Task]) *StatsService {
	return &StatsService{tickets: tickets, tasks: tasks}
}

// Overview snapshots both stores at call time.
func (s *StatsService) Overview() Overview {
	return Overview{
		Tickets: s.tickets.Stats(),
		Tasks:   s.tasks.Stats(),
	}
}
