package moderation

import (
	"log/slog"
	"testing"

	"support-chat/domain"
	"support-chat/errors"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestProfanityFilter_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	filter, err := NewProfanityFilter(DefaultProfanities, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "This is badword1 here",
			expected: "This is ******** here",
			words:    []string{"badword1"},
		},
		{
			name:     "Multiple words masked independently",
			input:    "badword1 and badword2",
			expected: "******** and ********",
			words:    []string{"badword1", "badword2"},
		},
		{
			name:     "Multiple occurrences of the same word",
			input:    "badword2 badword2",
			expected: "******** ********",
			words:    []string{"badword2", "badword2"},
		},
		{
			name:     "Matching is case-sensitive",
			input:    "BADWORD1 stays",
			expected: "BADWORD1 stays",
			words:    nil,
		},
		{
			name:     "Word adjacent to punctuation",
			input:    "You badword1!",
			expected: "You ********!",
			words:    []string{"badword1"},
		},
		{
			name:     "Accents are preserved around a match",
			input:    "Un été badword2",
			expected: "Un été ********",
			words:    []string{"badword2"},
		},
		{
			name:     "Nothing to censor",
			input:    "I am unable to process my payment.",
			expected: "I am unable to process my payment.",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, words := filter.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
			req.Equal(len([]rune(tt.input)), len([]rune(content)))
		})
	}
}

func TestProfanityFilter_Process_Keeps_Identity(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	filter, err := NewProfanityFilter([]string{"darn"}, '#', log)
	req.NoError(err)

	// Given a message carrying a profanity
	message := domain.Message{
		ID:         uuid.New(),
		SessionID:  uuid.New(),
		SenderID:   domain.NumericSender(1),
		SenderType: domain.CustomerParticipant,
		Content:    "darn it",
		Type:       domain.TextMessage,
	}

	// When the filter processes it
	processed := filter.Process(message)

	// Then only the content changed
	req.Equal("#### it", processed.Content)
	processed.Content = message.Content
	req.Equal(message, processed)
}

func TestProfanityFilter_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given an empty dictionary
	_, err := NewProfanityFilter([]string{"", ""}, replacementChar, log)

	// Then no filter can be built
	req.ErrorIs(err, errors.ErrEmptyWords)

	// Given a dictionary with blank entries
	filter, err := NewProfanityFilter([]string{"", "badword1"}, replacementChar, log)
	req.NoError(err)

	// Then blank entries are ignored
	content, words := filter.Censor("badword1 ...")
	req.Equal("******** ...", content)
	req.Equal([]string{"badword1"}, words)
}
