package api

import (
	"time"

	"support-chat/domain"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

type createParticipantRequest struct {
	ID    int    `json:"id" validate:"required,gt=0"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Steps left out fall back on the configured default pipeline, an empty list disables it.
type initiateChatRequest struct {
	CustomerID int       `json:"customer_id" validate:"required,gt=0"`
	Topic      string    `json:"topic" validate:"required"`
	Steps      *[]string `json:"steps"`
}

type assignAgentRequest struct {
	AgentID int `json:"agent_id" validate:"required,gt=0"`
}

type customerMessageRequest struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required"`
}

type agentMessageRequest struct {
	AgentID int    `json:"agent_id" validate:"required,gt=0"`
	Content string `json:"content" validate:"required"`
}

type botMessageRequest struct {
	BotID   string `json:"bot_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type attachmentRequest struct {
	FileName string `json:"file_name" validate:"required"`
}

type createTicketRequest struct {
	AgentID   int    `json:"agent_id" validate:"required,gt=0"`
	SessionID string `json:"session_id" validate:"required,uuid"`
	Issue     string `json:"issue" validate:"required"`
}

type resolveTicketRequest struct {
	AgentID int `json:"agent_id" validate:"required,gt=0"`
}

type participantResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionResponse struct {
	ID         string    `json:"id"`
	CustomerID int       `json:"customer_id"`
	Topic      string    `json:"topic"`
	AgentID    *int      `json:"agent_id"`
	Steps      []string  `json:"steps"`
	CreatedAt  time.Time `json:"created_at"`
}

type messageResponse struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	SenderID   string    `json:"sender_id"`
	SenderType string    `json:"sender_type"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

type transcriptResponse struct {
	Messages   []messageResponse `json:"messages"`
	NextCursor *string           `json:"next_cursor"`
}

func toCustomerResponse(customer domain.Customer) participantResponse {
	return participantResponse{ID: customer.ID, Name: customer.Name, Email: customer.Email}
}

func toAgentResponse(agent domain.Agent) participantResponse {
	return participantResponse{ID: agent.ID, Name: agent.Name, Email: agent.Email}
}

func toSessionResponse(session domain.ChatSession) sessionResponse {
	return sessionResponse{
		ID:         session.ID.String(),
		CustomerID: session.CustomerID,
		Topic:      session.Topic,
		AgentID:    session.AgentID,
		Steps:      session.StepNames(),
		CreatedAt:  session.CreatedAt,
	}
}

func toMessageResponse(message domain.Message) messageResponse {
	return messageResponse{
		ID:         message.ID.String(),
		SessionID:  message.SessionID.String(),
		SenderID:   message.SenderID.String(),
		SenderType: string(message.SenderType),
		Content:    message.Content,
		Type:       string(message.Type),
		CreatedAt:  message.CreatedAt,
	}
}

func toMessagesResponse(messages []domain.Message) []messageResponse {
	return mapAll(messages, toMessageResponse)
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	return lo.Map(items, func(item T, _ int) R {
		return fn(item)
	})
}
