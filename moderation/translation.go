package moderation

import (
	"fmt"
	"log/slog"

	"support-chat/domain"

	"github.com/abadojack/whatlanggo"
)

const (
	TranslationStep   = "translate"
	translationFormat = "[Translated to %s]: Lorem ipsum dolor sit amet, consectetur adipisici elit …"
)

// Translation is a stand-in step: no translation service is called,
// the content is always replaced by a fixed placeholder.
type Translation struct {
	targetLanguage string
	log            *slog.Logger
}

func NewTranslation(targetLanguage string, log *slog.Logger) Translation {
	return Translation{targetLanguage: targetLanguage, log: log}
}

func (t Translation) Name() string {
	return TranslationStep + ":" + t.targetLanguage
}

func (t Translation) Process(message domain.Message) domain.Message {
	info := whatlanggo.Detect(message.Content)
	t.log.Debug("Simulated translation",
		"message_id", message.ID,
		"from", info.Lang.Iso6391(),
		"confidence", info.Confidence,
		"to", t.targetLanguage)

	message.Content = fmt.Sprintf(translationFormat, t.targetLanguage)
	return message
}
