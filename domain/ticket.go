package domain

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketReassigned TicketStatus = "Reassigned"
)

type TicketID = uuid.UUID

type SupportTicket struct {
	ID        TicketID
	AgentID   int
	SessionID SessionID
	Issue     string
	Status    TicketStatus
	CreatedAt time.Time
}
