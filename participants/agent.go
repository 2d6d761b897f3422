package participants

import (
	"fmt"
	"log/slog"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/repositories"
	"support-chat/services"
)

type Agent struct {
	agent   domain.Agent
	service services.IChatService
}

func NewAgent(agentID int, repository repositories.IRepository, service services.IChatService, log *slog.Logger) (Agent, error) {
	agent, ok := repository.GetAgent(agentID)
	if !ok {
		log.Error("Unable to build agent", "agent_id", agentID, "error", errors.ErrAgentNotFound)
		return Agent{}, fmt.Errorf("%w: %d", errors.ErrAgentNotFound, agentID)
	}
	return Agent{agent: agent, service: service}, nil
}

func (a Agent) ID() int       { return a.agent.ID }
func (a Agent) Name() string  { return a.agent.Name }
func (a Agent) Email() string { return a.agent.Email }

func (a Agent) SendMessage(sessionID domain.SessionID, content string) error {
	return a.service.SendMessage(domain.SendMessageCommand{
		SessionID:  sessionID,
		SenderID:   domain.NumericSender(a.agent.ID),
		SenderType: domain.AgentParticipant,
		Content:    content,
	})
}

// HandleSession assigns this agent to the session.
func (a Agent) HandleSession(sessionID domain.SessionID) error {
	return a.service.AssignAgent(sessionID, a.agent.ID)
}

func (a Agent) CreateTicket(sessionID domain.SessionID, issue string) (domain.TicketID, error) {
	return a.service.CreateTicket(a.agent.ID, sessionID, issue)
}

func (a Agent) ResolveTicket(ticketID domain.TicketID) error {
	return a.service.ResolveTicket(ticketID)
}
