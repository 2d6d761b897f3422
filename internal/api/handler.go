package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"support-chat/domain"
	"support-chat/facade"
	"support-chat/moderation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct {
	facade       *facade.ChatFacade
	log          *slog.Logger
	stepOptions  moderation.StepOptions
	defaultSteps []string
}

func NewChatHandler(chatFacade *facade.ChatFacade, log *slog.Logger, stepOptions moderation.StepOptions, defaultSteps []string) *ChatHandler {
	return &ChatHandler{facade: chatFacade, log: log, stepOptions: stepOptions, defaultSteps: defaultSteps}
}

// bind decodes and validates the body, answering 400 itself when it can't.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (h *ChatHandler) CreateCustomer(c *gin.Context) {
	var req createParticipantRequest
	if !bind(c, &req) {
		return
	}
	customer := h.facade.CreateCustomer(req.ID, req.Name, req.Email)
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *ChatHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"customers": mapAll(h.facade.ListCustomers(), toCustomerResponse)})
}

func (h *ChatHandler) GetCustomer(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	customer, found := h.facade.GetCustomer(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (h *ChatHandler) CreateAgent(c *gin.Context) {
	var req createParticipantRequest
	if !bind(c, &req) {
		return
	}
	agent := h.facade.CreateAgent(req.ID, req.Name, req.Email)
	c.JSON(http.StatusCreated, toAgentResponse(agent))
}

func (h *ChatHandler) ListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": mapAll(h.facade.ListAgents(), toAgentResponse)})
}

func (h *ChatHandler) GetAgent(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	agent, found := h.facade.GetAgent(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
		return
	}
	c.JSON(http.StatusOK, toAgentResponse(agent))
}

func (h *ChatHandler) ListSessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": mapAll(h.facade.ListSessions(), toSessionResponse)})
}

func (h *ChatHandler) InitiateChat(c *gin.Context) {
	var req initiateChatRequest
	if !bind(c, &req) {
		return
	}
	names := h.defaultSteps
	if req.Steps != nil {
		names = *req.Steps
	}
	pipeline, err := moderation.ParseSteps(names, h.stepOptions, h.log)
	if err != nil {
		badRequest(c, err)
		return
	}
	sessionID, err := h.facade.InitiateChat(req.CustomerID, req.Topic, pipeline)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": sessionID.String(), "steps": domain.ChatSession{Pipeline: pipeline}.StepNames()})
}

func (h *ChatHandler) AssignAgent(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var req assignAgentRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.AgentHandleSession(sessionID, req.AgentID); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": sessionID.String(), "agent_id": req.AgentID})
}

func (h *ChatHandler) CustomerMessage(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var req customerMessageRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.CustomerSendMessage(sessionID, req.CustomerID, req.Content); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

func (h *ChatHandler) AgentMessage(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var req agentMessageRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.AgentSendMessage(sessionID, req.AgentID, req.Content); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

func (h *ChatHandler) BotMessage(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var req botMessageRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.ChatbotSendMessage(sessionID, req.BotID, req.Name, req.Content); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}

func (h *ChatHandler) AttachFile(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var req attachmentRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.AttachFile(sessionID, req.FileName); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "attached"})
}

func (h *ChatHandler) History(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toMessagesResponse(h.facade.GetChatHistory(sessionID))})
}

// Transcript pages with the opaque cursor returned by the previous call.
func (h *ChatHandler) Transcript(c *gin.Context) {
	sessionID, ok := uuidParam(c, "session_id")
	if !ok {
		return
	}
	var cursor *string
	if v := c.Query("cursor"); v != "" {
		cursor = &v
	}
	messages, next, err := h.facade.ChatTranscript(sessionID, cursor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transcriptResponse{Messages: toMessagesResponse(messages), NextCursor: next})
}

func (h *ChatHandler) CreateTicket(c *gin.Context) {
	var req createTicketRequest
	if !bind(c, &req) {
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	ticketID, err := h.facade.CreateSupportTicket(req.AgentID, sessionID, req.Issue)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ticket_id": ticketID.String()})
}

func (h *ChatHandler) ResolveTicket(c *gin.Context) {
	ticketID, ok := uuidParam(c, "ticket_id")
	if !ok {
		return
	}
	var req resolveTicketRequest
	if !bind(c, &req) {
		return
	}
	if err := h.facade.ResolveSupportTicket(req.AgentID, ticketID); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_id": ticketID.String(), "status": string(domain.TicketResolved)})
}
