package moderation

import (
	"log/slog"

	"support-chat/domain"

	goahocorasick "github.com/anknown/ahocorasick"
)

const ProfanityStep = "profanity"

var DefaultProfanities = []string{"badword1", "badword2"}

// ProfanityFilter masks every case-sensitive occurrence of a forbidden word
// with a run of censoredChar of the same length.
type ProfanityFilter struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

// NewProfanityFilter initializes the Aho-Corasick automaton with the provided censored words list.
// Words are kept verbatim: matching is case-sensitive.
func NewProfanityFilter(censoredWords []string, censoredChar rune, log *slog.Logger) (ProfanityFilter, error) {
	m, err := newMatcher(censoredWords, func(word string) string { return word })
	if err != nil {
		return ProfanityFilter{}, err
	}
	return ProfanityFilter{matcher: m, censoredChar: censoredChar, log: log}, nil
}

func (f ProfanityFilter) Name() string {
	return ProfanityStep
}

func (f ProfanityFilter) Process(message domain.Message) domain.Message {
	content, words := f.Censor(message.Content)
	if len(words) > 0 {
		f.log.Warn("Message includes badwords",
			"message_id", message.ID,
			"content", content,
			"words", len(words))
	}
	message.Content = content
	return message
}

// Censor replaces every matched span with censoredChar and returns the words found, in order.
func (f ProfanityFilter) Censor(original string) (string, []string) {
	if original == "" {
		return original, nil
	}

	origRunes := []rune(original)
	spans := f.matcher.MultiPatternSearch(origRunes, false)
	if len(spans) == 0 {
		return original, nil
	}

	var words []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origRunes) {
			continue
		}
		for i := start; i < end; i++ {
			origRunes[i] = f.censoredChar
		}
		words = append(words, string(span.Word))
	}

	return string(origRunes), words
}
