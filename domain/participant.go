// Package domain contains core concepts of the support chat system.
// This file defines Participant entities.
// No runtime, network, or UI logic should be added here.
package domain

type ParticipantType string

const (
	CustomerParticipant ParticipantType = "Customer"
	AgentParticipant    ParticipantType = "Agent"
	BotParticipant      ParticipantType = "Bot"
	SystemParticipant   ParticipantType = "System"
)

// Customer is registered once and never mutated afterwards.
type Customer struct {
	ID    int
	Name  string
	Email string
}

// Agent follows the same lifecycle as Customer.
type Agent struct {
	ID    int
	Name  string
	Email string
}
