package participants

import (
	"support-chat/domain"
)

// Participant is anyone able to post into a session.
type Participant interface {
	Name() string
	SendMessage(sessionID domain.SessionID, content string) error
}

var (
	_ Participant = Customer{}
	_ Participant = Agent{}
	_ Participant = Bot{}
)
