package domain

import "time"

// Article is a knowledge-base entry, optionally converted from a ticket.
type Article struct {
	ID             int
	Title          string
	Body           string
	Author         string
	SourceTicketID *int
	CreatedAt      time.Time
}
