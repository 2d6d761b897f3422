package moderation

import (
	"log/slog"
	"strings"

	"support-chat/domain"

	goahocorasick "github.com/anknown/ahocorasick"
)

const (
	SpamStep        = "spam"
	SpamReplacement = "[Message removed due to spam detection]"
)

var DefaultSpamKeywords = []string{"buy now", "free", "click here"}

// SpamFilter replaces the whole content as soon as one keyword is found,
// whatever the case of the content.
type SpamFilter struct {
	matcher *goahocorasick.Machine
	log     *slog.Logger
}

func NewSpamFilter(keywords []string, log *slog.Logger) (SpamFilter, error) {
	m, err := newMatcher(keywords, strings.ToLower)
	if err != nil {
		return SpamFilter{}, err
	}
	return SpamFilter{matcher: m, log: log}, nil
}

func (f SpamFilter) Name() string {
	return SpamStep
}

func (f SpamFilter) Process(message domain.Message) domain.Message {
	if f.IsSpam(message.Content) {
		f.log.Warn("Message detected as spam", "message_id", message.ID)
		message.Content = SpamReplacement
	}
	return message
}

// IsSpam stops at the first keyword found.
func (f SpamFilter) IsSpam(content string) bool {
	if content == "" {
		return false
	}
	found := f.matcher.MultiPatternSearch([]rune(strings.ToLower(content)), true)
	return len(found) > 0
}
