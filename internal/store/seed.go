package store

import "github.com/spec-kit/helpdesk/internal/domain"

// SeedUsers loads the default roster.
func SeedUsers(registry *Registry) {
	registry.AddUser("Admin", domain.UserRoleAdmin, domain.UserStatusActive)
	registry.AddUser("Sam Patel", domain.UserRoleAgent, domain.UserStatusActive)
	registry.AddUser("Dana Kim", domain.UserRoleAgent, domain.UserStatusActive)
}

// SeedTickets loads the default ticket queue.
func SeedTickets(tickets *Store[*domain.Ticket]) {
	defaults := []*domain.Ticket{
		{Subject: "Cannot log in to portal", Requester: "Taylor", Priority: domain.TicketPriorityHigh, SLAPlan: "Default 24h", HelpTopic: "Accounts"},
		{Subject: "Email not syncing", Requester: "Chris", Priority: domain.TicketPriorityNormal, SLAPlan: "Default 48h", HelpTopic: "Email"},
		{Subject: "Request new mouse", Requester: "Priya", Priority: domain.TicketPriorityLow, SLAPlan: "Default 72h", HelpTopic: "Hardware"},
		{Subject: "VPN not connecting", Requester: "Jordan", Priority: domain.TicketPriorityHigh, SLAPlan: "Default 24h", HelpTopic: "Network"},
		{Subject: "Slow laptop performance", Requester: "Morgan", Priority: domain.TicketPriorityNormal, SLAPlan: "Default 48h", HelpTopic: "Hardware"},
	}
	for _, ticket := range defaults {
		tickets.Create(ticket)
	}
}

// SeedTasks loads a pair of starter tasks. The first is linked to the
// portal login ticket.
func SeedTasks(tasks *Store[*domain.Task]) {
	portalTicket := 1
	defaults := []*domain.Task{
		{Title: "Reset portal SSO certificates", Department: "IT Ops", LinkedTicketID: &portalTicket, Description: "Rotate the expired SSO signing cert behind the portal login failures."},
		{Title: "Order replacement peripherals", Department: "Facilities", Description: "Batch order for mice and keyboards flagged in hardware tickets."},
	}
	for _, task := range defaults {
		tasks.Create(task)
	}
}
