package api

import (
	"net/http"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
)

func New(chatHandler *ChatHandler, db *badger.DB) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", Health)
	r.GET("/ready", Ready)
	if db != nil {
		r.GET("/debug/inspect", Inspect(db))
	}

	r.POST("/customers", chatHandler.CreateCustomer)
	r.GET("/customers", chatHandler.ListCustomers)
	r.GET("/customers/:id", chatHandler.GetCustomer)
	r.POST("/agents", chatHandler.CreateAgent)
	r.GET("/agents", chatHandler.ListAgents)
	r.GET("/agents/:id", chatHandler.GetAgent)
	r.GET("/sessions", chatHandler.ListSessions)

	chats := r.Group("/chats")
	{
		chats.POST("/new", chatHandler.InitiateChat)
		chats.POST("/:session_id/assign-agent", chatHandler.AssignAgent)
		chats.POST("/:session_id/messages/customer", chatHandler.CustomerMessage)
		chats.POST("/:session_id/messages/agent", chatHandler.AgentMessage)
		chats.POST("/:session_id/messages/bot", chatHandler.BotMessage)
		chats.POST("/:session_id/attachments", chatHandler.AttachFile)
		chats.GET("/:session_id/history", chatHandler.History)
		chats.GET("/:session_id/transcript", chatHandler.Transcript)
	}

	tickets := r.Group("/tickets")
	{
		tickets.POST("", chatHandler.CreateTicket)
		tickets.POST("/:ticket_id/resolve", chatHandler.ResolveTicket)
	}

	return r
}
