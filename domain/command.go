package domain

// SendMessageCommand carries everything needed to post one message.
// Type defaults to TextMessage when left empty.
type SendMessageCommand struct {
	SessionID  SessionID
	SenderID   SenderID
	SenderType ParticipantType
	Content    string
	Type       MessageType
}
