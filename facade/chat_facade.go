package facade

import (
	"log/slog"

	"support-chat/domain"
	"support-chat/participants"
	"support-chat/repositories"
	"support-chat/services"
)

// ChatFacade is the single entry point of the CLI and the HTTP layer.
// Every participant is rebuilt from the repository on each call.
type ChatFacade struct {
	log        *slog.Logger
	repository repositories.IRepository
	transcript repositories.ITranscriptRepository
	service    services.IChatService
	factory    participants.Factory
}

func NewChatFacade(log *slog.Logger, repository repositories.IRepository, transcript repositories.ITranscriptRepository) *ChatFacade {
	service := services.NewChatService(log, repository, transcript)
	return &ChatFacade{
		log:        log,
		repository: repository,
		transcript: transcript,
		service:    service,
		factory:    participants.NewFactory(repository, service, log),
	}
}

func (f *ChatFacade) CreateCustomer(customerID int, name, email string) domain.Customer {
	customer := domain.Customer{ID: customerID, Name: name, Email: email}
	f.repository.AddCustomer(customer)
	f.log.Info("Customer created", "customer_id", customerID, "name", name)
	return customer
}

func (f *ChatFacade) CreateAgent(agentID int, name, email string) domain.Agent {
	agent := domain.Agent{ID: agentID, Name: name, Email: email}
	f.repository.AddAgent(agent)
	f.log.Info("Agent created", "agent_id", agentID, "name", name)
	return agent
}

func (f *ChatFacade) InitiateChat(customerID int, topic string, pipeline []domain.MessageProcessor) (domain.SessionID, error) {
	customer, err := f.factory.Customer(customerID)
	if err != nil {
		return domain.SessionID{}, err
	}
	sessionID, err := customer.InitiateSession(topic, pipeline)
	if err != nil {
		return domain.SessionID{}, err
	}
	f.log.Info("Chat session initiated", "session_id", sessionID, "customer_id", customerID, "topic", topic)
	return sessionID, nil
}

func (f *ChatFacade) CustomerSendMessage(sessionID domain.SessionID, customerID int, content string) error {
	customer, err := f.factory.Customer(customerID)
	if err != nil {
		return err
	}
	if err = customer.SendMessage(sessionID, content); err != nil {
		return err
	}
	f.log.Info("Customer sent message", "customer_id", customerID, "session_id", sessionID)
	return nil
}

func (f *ChatFacade) AgentHandleSession(sessionID domain.SessionID, agentID int) error {
	agent, err := f.factory.Agent(agentID)
	if err != nil {
		return err
	}
	if err = agent.HandleSession(sessionID); err != nil {
		return err
	}
	f.log.Info("Agent assigned to session", "agent_id", agentID, "session_id", sessionID)
	return nil
}

func (f *ChatFacade) AgentSendMessage(sessionID domain.SessionID, agentID int, content string) error {
	agent, err := f.factory.Agent(agentID)
	if err != nil {
		return err
	}
	if err = agent.SendMessage(sessionID, content); err != nil {
		return err
	}
	f.log.Info("Agent sent message", "agent_id", agentID, "session_id", sessionID)
	return nil
}

func (f *ChatFacade) ChatbotSendMessage(sessionID domain.SessionID, botID, name, content string) error {
	if err := f.factory.Bot(botID, name).SendMessage(sessionID, content); err != nil {
		return err
	}
	f.log.Info("Chatbot sent message", "bot_id", botID, "name", name, "session_id", sessionID)
	return nil
}

func (f *ChatFacade) CreateSupportTicket(agentID int, sessionID domain.SessionID, issue string) (domain.TicketID, error) {
	agent, err := f.factory.Agent(agentID)
	if err != nil {
		return domain.TicketID{}, err
	}
	ticketID, err := agent.CreateTicket(sessionID, issue)
	if err != nil {
		return domain.TicketID{}, err
	}
	f.log.Info("Support ticket created", "ticket_id", ticketID, "agent_id", agentID, "session_id", sessionID)
	return ticketID, nil
}

// ResolveSupportTicket goes through the agent, who must still exist.
func (f *ChatFacade) ResolveSupportTicket(agentID int, ticketID domain.TicketID) error {
	agent, err := f.factory.Agent(agentID)
	if err != nil {
		return err
	}
	if err = agent.ResolveTicket(ticketID); err != nil {
		return err
	}
	f.log.Info("Support ticket resolved", "ticket_id", ticketID, "agent_id", agentID)
	return nil
}

func (f *ChatFacade) AttachFile(sessionID domain.SessionID, fileName string) error {
	if err := f.service.AttachFile(sessionID, fileName); err != nil {
		return err
	}
	f.log.Info("File attached", "session_id", sessionID, "file_name", fileName)
	return nil
}

// GetChatHistory returns the session messages oldest first, an unknown session has none.
func (f *ChatFacade) GetChatHistory(sessionID domain.SessionID) []domain.Message {
	return f.repository.MessagesBySession(sessionID)
}

// ChatTranscript pages through the recorded transcript of a session.
func (f *ChatFacade) ChatTranscript(sessionID domain.SessionID, cursor *string) ([]domain.Message, *string, error) {
	return f.transcript.GetMessages(sessionID, cursor)
}

func (f *ChatFacade) ListCustomers() []domain.Customer {
	return f.repository.ListCustomers()
}

func (f *ChatFacade) ListAgents() []domain.Agent {
	return f.repository.ListAgents()
}

func (f *ChatFacade) ListSessions() []domain.ChatSession {
	return f.repository.ListSessions()
}

func (f *ChatFacade) GetCustomer(customerID int) (domain.Customer, bool) {
	return f.repository.GetCustomer(customerID)
}

func (f *ChatFacade) GetAgent(agentID int) (domain.Agent, bool) {
	return f.repository.GetAgent(agentID)
}
