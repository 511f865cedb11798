package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/observability"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
)

// DashboardHandler serves the read-only dashboard surface: the stats
// projection and active item listings. All mutations happen through the
// terminal UI; nothing here writes.
type DashboardHandler struct {
	stats    *service.StatsService
	tickets  *store.Store[*domain.Ticket]
	tasks    *store.Store[*domain.Task]
	registry *store.Registry
	metrics  *observability.Metrics
}

// NewDashboardHandler returns a new handler instance.
func NewDashboardHandler(stats *service.StatsService, tickets *store.Store[*domain.Ticket], tasks *store.Store[*domain.Task], registry *store.Registry, metrics *observability.Metrics) *DashboardHandler {
	return &DashboardHandler{
		stats:    stats,
		tickets:  tickets,
		tasks:    tasks,
		registry: registry,
		metrics:  metrics,
	}
}

// Stats returns both stores' counters plus event totals.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	var eventCounts map[string]int64
	if h.metrics != nil {
		eventCounts = h.metrics.EventCounts()
	}
	return c.JSON(dto.NewStatsResponse(h.stats.Overview(), eventCounts))
}

// Tickets lists active tickets in insertion order. Summaries are built
// inside the store's read lock so concurrent claim/resolve flows never
// expose half-written fields.
func (h *DashboardHandler) Tickets(c *fiber.Ctx) error {
	summaries := make([]dto.TicketSummary, 0, h.tickets.Len())
	h.tickets.ForEachActive(func(ticket *domain.Ticket) {
		summaries = append(summaries, dto.NewTicketSummary(ticket, h.registry))
	})
	return c.JSON(fiber.Map{"tickets": summaries})
}

// Tasks lists active tasks in insertion order.
func (h *DashboardHandler) Tasks(c *fiber.Ctx) error {
	summaries := make([]dto.TaskSummary, 0, h.tasks.Len())
	h.tasks.ForEachActive(func(task *domain.Task) {
		summaries = append(summaries, dto.NewTaskSummary(task, h.registry))
	})
	return c.JSON(fiber.Map{"tasks": summaries})
}
