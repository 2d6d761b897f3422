//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/moderation"
	"support-chat/repositories"

	"github.com/google/uuid"
)

type IChatService interface {
	InitiateSession(customerID int, topic string, pipeline []domain.MessageProcessor) (domain.SessionID, error)
	SendMessage(cmd domain.SendMessageCommand) error
	AssignAgent(sessionID domain.SessionID, agentID int) error
	CreateTicket(agentID int, sessionID domain.SessionID, issue string) (domain.TicketID, error)
	ResolveTicket(ticketID domain.TicketID) error
	AttachFile(sessionID domain.SessionID, fileName string) error
}

// ChatService checks every referenced id against the repository before touching it.
// A failed call leaves the repository exactly as it found it.
type ChatService struct {
	log        *slog.Logger
	repository repositories.IRepository
	transcript repositories.ITranscriptRepository
}

func NewChatService(log *slog.Logger, repository repositories.IRepository, transcript repositories.ITranscriptRepository) *ChatService {
	return &ChatService{log: log, repository: repository, transcript: transcript}
}

func (s *ChatService) InitiateSession(customerID int, topic string, pipeline []domain.MessageProcessor) (domain.SessionID, error) {
	if _, ok := s.repository.GetCustomer(customerID); !ok {
		s.log.Error("Unable to initiate session", "customer_id", customerID, "error", errors.ErrInvalidCustomer)
		return uuid.Nil, fmt.Errorf("%w: %d", errors.ErrInvalidCustomer, customerID)
	}
	session := domain.ChatSession{
		ID:         uuid.New(),
		CustomerID: customerID,
		Topic:      topic,
		Pipeline:   append([]domain.MessageProcessor(nil), pipeline...),
		CreatedAt:  time.Now().UTC(),
	}
	s.repository.AddSession(session)
	s.log.Debug("Session initiated", "session_id", session.ID, "steps", session.StepNames())
	return session.ID, nil
}

// SendMessage runs the content through the session pipeline and stores the result.
func (s *ChatService) SendMessage(cmd domain.SendMessageCommand) error {
	session, ok := s.repository.GetSession(cmd.SessionID)
	if !ok {
		s.log.Error("Unable to send message", "session_id", cmd.SessionID, "error", errors.ErrInvalidSession)
		return fmt.Errorf("%w: %s", errors.ErrInvalidSession, cmd.SessionID)
	}
	messageType := cmd.Type
	if messageType == "" {
		messageType = domain.TextMessage
	}
	message := moderation.Pipeline(session.Pipeline).Apply(domain.Message{
		ID:         uuid.New(),
		SessionID:  session.ID,
		SenderID:   cmd.SenderID,
		SenderType: cmd.SenderType,
		Content:    cmd.Content,
		CreatedAt:  time.Now().UTC(),
		Type:       messageType,
	})

	if err := s.transcript.StoreMessage(message); err != nil {
		s.log.Error("Unable to record message", "session_id", session.ID, "error", err)
		return err
	}
	s.repository.AddMessage(message)
	return nil
}

// AssignAgent overwrites any previously assigned agent.
func (s *ChatService) AssignAgent(sessionID domain.SessionID, agentID int) error {
	if _, ok := s.repository.GetSession(sessionID); !ok {
		s.log.Error("Unable to assign agent", "session_id", sessionID, "error", errors.ErrInvalidSession)
		return fmt.Errorf("%w: %s", errors.ErrInvalidSession, sessionID)
	}
	if _, ok := s.repository.GetAgent(agentID); !ok {
		s.log.Error("Unable to assign agent", "agent_id", agentID, "error", errors.ErrInvalidAgent)
		return fmt.Errorf("%w: %d", errors.ErrInvalidAgent, agentID)
	}
	updated := s.repository.UpdateSession(sessionID, func(session *domain.ChatSession) {
		session.AgentID = &agentID
	})
	if !updated {
		return fmt.Errorf("%w: %s", errors.ErrInvalidSession, sessionID)
	}
	return nil
}

func (s *ChatService) CreateTicket(agentID int, sessionID domain.SessionID, issue string) (domain.TicketID, error) {
	if _, ok := s.repository.GetAgent(agentID); !ok {
		s.log.Error("Unable to create ticket", "agent_id", agentID, "error", errors.ErrInvalidAgent)
		return uuid.Nil, fmt.Errorf("%w: %d", errors.ErrInvalidAgent, agentID)
	}
	if _, ok := s.repository.GetSession(sessionID); !ok {
		s.log.Error("Unable to create ticket", "session_id", sessionID, "error", errors.ErrInvalidSession)
		return uuid.Nil, fmt.Errorf("%w: %s", errors.ErrInvalidSession, sessionID)
	}
	ticket := domain.SupportTicket{
		ID:        uuid.New(),
		AgentID:   agentID,
		SessionID: sessionID,
		Issue:     issue,
		Status:    domain.TicketOpen,
		CreatedAt: time.Now().UTC(),
	}
	s.repository.AddTicket(ticket)
	return ticket.ID, nil
}

// ResolveTicket does not look at the current status, resolving twice is not an error.
func (s *ChatService) ResolveTicket(ticketID domain.TicketID) error {
	updated := s.repository.UpdateTicket(ticketID, func(ticket *domain.SupportTicket) {
		ticket.Status = domain.TicketResolved
	})
	if !updated {
		s.log.Error("Unable to resolve ticket", "ticket_id", ticketID, "error", errors.ErrInvalidTicket)
		return fmt.Errorf("%w: %s", errors.ErrInvalidTicket, ticketID)
	}
	return nil
}

func (s *ChatService) AttachFile(sessionID domain.SessionID, fileName string) error {
	return s.SendMessage(domain.SendMessageCommand{
		SessionID:  sessionID,
		SenderID:   domain.SystemSender,
		SenderType: domain.SystemParticipant,
		Content:    fmt.Sprintf("File attached: %s", fileName),
		Type:       domain.FileMessage,
	})
}
