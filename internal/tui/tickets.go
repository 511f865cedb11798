package tui

import (
	"fmt"

	"github.com/spec-kit/helpdesk/internal/domain"
)

func newTicketTab(deps Deps, keys KeyMap, styles Styles) *itemTab[*domain.Ticket] {
	return &itemTab[*domain.Ticket]{
		kind:      domain.KindTicket,
		items:     deps.Tickets,
		claims:    deps.TicketClaims,
		lifecycle: deps.TicketLifecycle,
		registry:  deps.Registry,
		articles:  deps.Articles,
		keys:      keys,
		styles:    styles,
		header:    fmt.Sprintf("%-4s %-30s %-12s %-8s %-10s %s", "ID", "Subject", "From", "Priority", "Status", "Assigned To"),
		renderRow: renderTicketRow,
		newForm:   newTicketForm,
		buildItem: buildTicket,
	}
}

func renderTicketRow(ticket *domain.Ticket, assignedTo string) string {
	if assignedTo == "" {
		assignedTo = "Unassigned"
	}
	return fmt.Sprintf("%-4d %-30s %-12s %-8s %-10s %s",
		ticket.ItemID(), clip(ticket.Subject, 28), clip(ticket.Requester, 12),
		ticket.Priority, ticket.ItemStatus(), assignedTo)
}

func newTicketForm() []formField {
	return []formField{
		newFormField("subject", "short problem summary"),
		newFormField("requester", "who reported it"),
		newFormField("priority", "Low / Normal / High"),
		newFormField("help topic", "Accounts, Email, Hardware, ..."),
	}
}

func buildTicket(values []string) *domain.Ticket {
	priority := domain.TicketPriority(values[2])
	switch priority {
	case domain.TicketPriorityLow, domain.TicketPriorityNormal, domain.TicketPriorityHigh:
	default:
		priority = domain.TicketPriorityNormal
	}
	return &domain.Ticket{
		Subject:   values[0],
		Requester: values[1],
		Priority:  priority,
		HelpTopic: values[3],
		SLAPlan:   "Default 48h",
	}
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
