package participants

import (
	"support-chat/domain"
	"support-chat/services"
)

// Bot is not a registered entity, any id is accepted.
type Bot struct {
	id      string
	name    string
	service services.IChatService
}

func NewBot(id, name string, service services.IChatService) Bot {
	return Bot{id: id, name: name, service: service}
}

func (b Bot) ID() string   { return b.id }
func (b Bot) Name() string { return b.name }

func (b Bot) SendMessage(sessionID domain.SessionID, content string) error {
	return b.service.SendMessage(domain.SendMessageCommand{
		SessionID:  sessionID,
		SenderID:   domain.SenderID(b.id),
		SenderType: domain.BotParticipant,
		Content:    content,
	})
}
