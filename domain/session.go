package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionID = uuid.UUID

// ChatSession binds a customer, an optional agent and the pipeline
// applied to every message posted in it.
type ChatSession struct {
	ID         SessionID
	CustomerID int
	Topic      string
	AgentID    *int
	Pipeline   []MessageProcessor
	CreatedAt  time.Time
}

func (s ChatSession) HasAgent() bool {
	return s.AgentID != nil
}

// StepNames lists the pipeline in application order.
func (s ChatSession) StepNames() []string {
	names := make([]string, 0, len(s.Pipeline))
	for _, step := range s.Pipeline {
		names = append(names, step.Name())
	}
	return names
}
