package participants

import (
	"log/slog"
	"testing"

	"support-chat/domain"
	"support-chat/errors"
	"support-chat/mocks"
	"support-chat/repositories"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFactory(t *testing.T) (Factory, *mocks.MockIChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIChatService(ctrl)
	repository := repositories.NewRepository()
	repository.AddCustomer(domain.Customer{ID: 1, Name: "John Doe", Email: "john@example.com"})
	repository.AddAgent(domain.Agent{ID: 101, Name: "Charlie", Email: "charlie@support.com"})
	return NewFactory(repository, service, logs.GetLoggerFromLevel(slog.LevelDebug)), service
}

func TestFactory_Create(t *testing.T) {
	factory, _ := newFactory(t)

	tests := []struct {
		description string
		kind        domain.ParticipantType
		args        Args
		name        string
		wantErr     error
	}{
		{"Should create a registered customer", domain.CustomerParticipant, Args{CustomerID: 1}, "John Doe", nil},
		{"Should create a registered agent", domain.AgentParticipant, Args{AgentID: 101}, "Charlie", nil},
		{"Should create any bot", domain.BotParticipant, Args{BotID: "Bot-501", BotName: "SupportBot"}, "SupportBot", nil},
		{"Should fail on unknown customer", domain.CustomerParticipant, Args{CustomerID: 2}, "", errors.ErrCustomerNotFound},
		{"Should fail on unknown agent", domain.AgentParticipant, Args{AgentID: 102}, "", errors.ErrAgentNotFound},
		{"Should fail on unknown kind", domain.SystemParticipant, Args{}, "", errors.ErrUnknownParticipantType},
		{"Should fail on empty kind", "", Args{}, "", errors.ErrUnknownParticipantType},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			participant, err := factory.Create(tt.kind, tt.args)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				req.Nil(participant)
				return
			}
			req.NoError(err)
			req.Equal(tt.name, participant.Name())
		})
	}
}

func TestParticipants_SendMessage_Tags_Sender(t *testing.T) {
	factory, service := newFactory(t)
	sessionID := uuid.New()

	customer, err := factory.Customer(1)
	require.NoError(t, err)
	agent, err := factory.Agent(101)
	require.NoError(t, err)
	bot := factory.Bot("Bot-501", "SupportBot")

	tests := []struct {
		description string
		participant Participant
		senderID    domain.SenderID
		senderType  domain.ParticipantType
	}{
		{"Customer", customer, "1", domain.CustomerParticipant},
		{"Agent", agent, "101", domain.AgentParticipant},
		{"Bot", bot, "Bot-501", domain.BotParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			service.EXPECT().
				SendMessage(domain.SendMessageCommand{
					SessionID:  sessionID,
					SenderID:   tt.senderID,
					SenderType: tt.senderType,
					Content:    "Hello",
				}).
				Return(nil).
				Times(1)

			req.NoError(tt.participant.SendMessage(sessionID, "Hello"))
		})
	}
}

func TestCustomer_InitiateSession(t *testing.T) {
	req := require.New(t)
	factory, service := newFactory(t)
	customer, err := factory.Customer(1)
	req.NoError(err)
	expected := uuid.New()

	service.EXPECT().InitiateSession(1, "Payment Issue", gomock.Nil()).Return(expected, nil)

	sessionID, err := customer.InitiateSession("Payment Issue", nil)
	req.NoError(err)
	req.Equal(expected, sessionID)
	req.Equal("john@example.com", customer.Email())
}

func TestAgent_Delegates_To_Service(t *testing.T) {
	req := require.New(t)
	factory, service := newFactory(t)
	agent, err := factory.Agent(101)
	req.NoError(err)
	sessionID := uuid.New()
	ticketID := uuid.New()

	gomock.InOrder(
		service.EXPECT().AssignAgent(sessionID, 101).Return(nil),
		service.EXPECT().CreateTicket(101, sessionID, "Resolve billing issue").Return(ticketID, nil),
		service.EXPECT().ResolveTicket(ticketID).Return(nil),
	)

	req.NoError(agent.HandleSession(sessionID))
	created, err := agent.CreateTicket(sessionID, "Resolve billing issue")
	req.NoError(err)
	req.Equal(ticketID, created)
	req.NoError(agent.ResolveTicket(ticketID))
}

func TestAgent_HandleSession_Propagates_Error(t *testing.T) {
	req := require.New(t)
	factory, service := newFactory(t)
	agent, err := factory.Agent(101)
	req.NoError(err)
	sessionID := uuid.New()

	service.EXPECT().AssignAgent(sessionID, 101).Return(errors.ErrInvalidSession)

	req.ErrorIs(agent.HandleSession(sessionID), errors.ErrInvalidSession)
}
