package facade

import (
	"fmt"
	"log/slog"
	"testing"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/moderation"
	"support-chat/repositories"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newFacade(t *testing.T, limit *int) *ChatFacade {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := repositories.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewChatFacade(log, repositories.NewRepository(), repositories.NewTranscriptRepository(db, log, limit))
}

func parseSteps(t *testing.T, names ...string) []domain.MessageProcessor {
	t.Helper()
	pipeline, err := moderation.ParseSteps(names, moderation.DefaultStepOptions(), slog.Default())
	require.NoError(t, err)
	return pipeline
}

func TestChatFacade_Support_Workflow(t *testing.T) {
	req := require.New(t)
	f := newFacade(t, nil)

	f.CreateCustomer(1, "John Doe", "john.doe@example.com")
	f.CreateAgent(101, "Jane Smith", "jane.smith@support.com")

	sessionID, err := f.InitiateChat(1, "Payment Issue", parseSteps(t, "spam", "profanity"))
	req.NoError(err)

	req.NoError(f.CustomerSendMessage(sessionID, 1, "I am unable to process my payment."))
	req.NoError(f.AgentHandleSession(sessionID, 101))
	req.NoError(f.AgentSendMessage(sessionID, 101, "I'm sorry to hear that. Could you provide more details?"))
	req.NoError(f.AttachFile(sessionID, "payment_error.png"))
	req.NoError(f.ChatbotSendMessage(sessionID, "Bot-501", "HelpBot", "Have you tried clearing your browser cache?"))
	req.NoError(f.CustomerSendMessage(sessionID, 1, "Buy now! Limited offer."))

	ticketID, err := f.CreateSupportTicket(101, sessionID, "Customer unable to process payment")
	req.NoError(err)
	req.NoError(f.ResolveSupportTicket(101, ticketID))
	req.NoError(f.ResolveSupportTicket(101, ticketID))

	history := f.GetChatHistory(sessionID)
	req.Equal([]string{
		"I am unable to process my payment.",
		"I'm sorry to hear that. Could you provide more details?",
		"File attached: payment_error.png",
		"Have you tried clearing your browser cache?",
		moderation.SpamReplacement,
	}, lo.Map(history, func(m domain.Message, _ int) string { return m.Content }))
	req.Equal([]domain.ParticipantType{
		domain.CustomerParticipant,
		domain.AgentParticipant,
		domain.SystemParticipant,
		domain.BotParticipant,
		domain.CustomerParticipant,
	}, lo.Map(history, func(m domain.Message, _ int) domain.ParticipantType { return m.SenderType }))

	sessions := f.ListSessions()
	req.Len(sessions, 1)
	req.Equal(101, *sessions[0].AgentID)
}

func TestChatFacade_Failures(t *testing.T) {
	req := require.New(t)
	f := newFacade(t, nil)
	f.CreateCustomer(1, "John Doe", "john.doe@example.com")
	sessionID, err := f.InitiateChat(1, "Payment Issue", nil)
	req.NoError(err)

	_, err = f.InitiateChat(7, "Payment Issue", nil)
	req.ErrorIs(err, errors.ErrCustomerNotFound)

	req.ErrorIs(f.AgentHandleSession(sessionID, 101), errors.ErrAgentNotFound)
	req.ErrorIs(f.CustomerSendMessage(uuid.New(), 1, "hello"), errors.ErrInvalidSession)
	req.ErrorIs(f.ChatbotSendMessage(uuid.New(), "Bot-501", "HelpBot", "hello"), errors.ErrInvalidSession)

	f.CreateAgent(101, "Jane Smith", "jane.smith@support.com")
	req.ErrorIs(f.ResolveSupportTicket(101, uuid.New()), errors.ErrInvalidTicket)
	_, err = f.CreateSupportTicket(101, uuid.New(), "issue")
	req.ErrorIs(err, errors.ErrInvalidSession)

	// Unknown sessions simply have no history
	req.Empty(f.GetChatHistory(uuid.New()))
}

func TestChatFacade_Lookups(t *testing.T) {
	req := require.New(t)
	f := newFacade(t, nil)
	f.CreateCustomer(3, "Bob", "bob@example.com")
	f.CreateCustomer(2, "Alice", "alice@example.com")
	f.CreateAgent(101, "Jane Smith", "jane.smith@support.com")

	customer, ok := f.GetCustomer(2)
	req.True(ok)
	req.Equal("Alice", customer.Name)
	_, ok = f.GetCustomer(4)
	req.False(ok)

	agent, ok := f.GetAgent(101)
	req.True(ok)
	req.Equal("jane.smith@support.com", agent.Email)

	req.Equal([]string{"Alice", "Bob"}, lo.Map(f.ListCustomers(), func(c domain.Customer, _ int) string { return c.Name }))
	req.Len(f.ListAgents(), 1)
}

func TestChatFacade_Concurrent_Sessions(t *testing.T) {
	req := require.New(t)
	f := newFacade(t, nil)
	f.CreateAgent(101, "Jane Smith", "jane.smith@support.com")

	customers := 10
	for id := 1; id <= customers; id++ {
		f.CreateCustomer(id, fmt.Sprintf("Customer %d", id), fmt.Sprintf("customer%d@example.com", id))
	}

	sessions := make([]domain.SessionID, customers)
	pipelines := make([][]domain.MessageProcessor, customers)
	for i := range customers {
		pipelines[i] = parseSteps(t, "spam", "profanity", "translate:French")
	}
	var g errgroup.Group
	for i := range customers {
		g.Go(func() error {
			customerID := i + 1
			sessionID, err := f.InitiateChat(customerID, "Account Inquiry", pipelines[i])
			if err != nil {
				return err
			}
			sessions[i] = sessionID
			if err = f.CustomerSendMessage(sessionID, customerID, "I have a question regarding my account."); err != nil {
				return err
			}
			if err = f.AgentHandleSession(sessionID, 101); err != nil {
				return err
			}
			return f.AgentSendMessage(sessionID, 101, "How can I assist you with your account?")
		})
	}
	req.NoError(g.Wait())

	// Then every session kept its own messages, translated
	req.Len(f.ListSessions(), customers)
	for _, sessionID := range sessions {
		history := f.GetChatHistory(sessionID)
		req.Len(history, 2)
		for _, message := range history {
			req.Equal(sessionID, message.SessionID)
			req.Contains(message.Content, "[Translated to French]")
		}
	}
}

func TestChatFacade_ChatTranscript_Pages(t *testing.T) {
	req := require.New(t)
	f := newFacade(t, lo.ToPtr(2))
	f.CreateCustomer(1, "John Doe", "john.doe@example.com")
	sessionID, err := f.InitiateChat(1, "Payment Issue", nil)
	req.NoError(err)

	for i := range 3 {
		req.NoError(f.CustomerSendMessage(sessionID, 1, fmt.Sprintf("message %d", i)))
	}

	page, cursor, err := f.ChatTranscript(sessionID, nil)
	req.NoError(err)
	req.Len(page, 2)
	req.NotNil(cursor)

	page, cursor, err = f.ChatTranscript(sessionID, cursor)
	req.NoError(err)
	req.Len(page, 1)
	req.Equal("message 2", page[0].Content)
	req.Nil(cursor)
}
