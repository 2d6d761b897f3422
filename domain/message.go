// Package domain contains core concepts of the support chat system.
// This file defines Message records and related rules.
// Messages are immutable once they leave the pipeline and reach the store.
package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	TextMessage   MessageType = "Text"
	ImageMessage  MessageType = "Image"
	FileMessage   MessageType = "File"
	SystemMessage MessageType = "System"
)

// SenderID identifies the author of a message.
// Customers and agents are numeric, bots carry their own string id.
type SenderID string

const SystemSender SenderID = "System"

func NumericSender(id int) SenderID {
	return SenderID(strconv.Itoa(id))
}

func (s SenderID) String() string {
	return string(s)
}

// Message represents a chat event posted into a session.
type Message struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	SenderID   SenderID
	SenderType ParticipantType
	Content    string
	CreatedAt  time.Time
	Type       MessageType
}

// MessageProcessor is a single step of a session pipeline.
// It may rewrite Content only.
type MessageProcessor interface {
	Name() string
	Process(message Message) Message
}
