package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/service"
	"github.com/spec-kit/helpdesk/internal/store"
)

// TicketSummary response. AssignedTo carries the display name resolved at
// response-build time; the id stays the authoritative relation.
type TicketSummary struct {
	ID         int                   `json:"id"`
	Subject    string                `json:"subject"`
	Requester  string                `json:"requester"`
	Priority   domain.TicketPriority `json:"priority"`
	Status     domain.ItemStatus     `json:"status"`
	AssigneeID *int                  `json:"assignee_id"`
	AssignedTo string                `json:"assigned_to,omitempty"`
	SLAPlan    string                `json:"sla_plan"`
	HelpTopic  string                `json:"help_topic"`
	Printing   bool                  `json:"printing"`
	NoteCount  int                   `json:"note_count"`
	CreatedAt  time.Time             `json:"created_at"`
}

// TaskSummary response.
type TaskSummary struct {
	ID             int               `json:"id"`
	Title          string            `json:"title"`
	Department     string            `json:"department"`
	Status         domain.ItemStatus `json:"status"`
	AssigneeID     *int              `json:"assignee_id"`
	AssignedTo     string            `json:"assigned_to,omitempty"`
	LinkedTicketID *int              `json:"linked_ticket_id"`
	NoteCount      int               `json:"note_count"`
	CreatedAt      time.Time         `json:"created_at"`
}

// StatsResponse is the dashboard projection plus event totals.
type StatsResponse struct {
	Tickets store.Stats      `json:"tickets"`
	Tasks   store.Stats      `json:"tasks"`
	Events  map[string]int64 `json:"events,omitempty"`
}

// NewTicketSummary maps a domain ticket.
func NewTicketSummary(ticket *domain.Ticket, registry *store.Registry) TicketSummary {
	return TicketSummary{
		ID:         ticket.ItemID(),
		Subject:    ticket.Subject,
		Requester:  ticket.Requester,
		Priority:   ticket.Priority,
		Status:     ticket.ItemStatus(),
		AssigneeID: ticket.AssigneeID(),
		AssignedTo: registry.NameOf(ticket.AssigneeID()),
		SLAPlan:    ticket.SLAPlan,
		HelpTopic:  ticket.HelpTopic,
		Printing:   ticket.Printing,
		NoteCount:  len(ticket.Notes()),
		CreatedAt:  ticket.CreatedAt,
	}
}

// NewTaskSummary maps a domain task.
func NewTaskSummary(task *domain.Task, registry *store.Registry) TaskSummary {
	return TaskSummary{
		ID:             task.ItemID(),
		Title:          task.Title,
		Department:     task.Department,
		Status:         task.ItemStatus(),
		AssigneeID:     task.AssigneeID(),
		AssignedTo:     registry.NameOf(task.AssigneeID()),
		LinkedTicketID: task.LinkedTicketID,
		NoteCount:      len(task.Notes()),
		CreatedAt:      task.CreatedAt,
	}
}

// NewStatsResponse maps the service overview.
func NewStatsResponse(overview service.Overview, eventCounts map[string]int64) StatsResponse {
	return StatsResponse{
		Tickets: overview.Tickets,
		Tasks:   overview.Tasks,
		Events:  eventCounts,
	}
}
