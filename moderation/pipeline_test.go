package moderation

import (
	"log/slog"
	"testing"
	"time"

	"support-chat/domain"
	"support-chat/errors"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type rewriteEverything struct{}

func (rewriteEverything) Name() string { return "rewrite" }

func (rewriteEverything) Process(message domain.Message) domain.Message {
	return domain.Message{ID: uuid.New(), Content: message.Content + "!"}
}

func newMessage(content string) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SessionID:  uuid.New(),
		SenderID:   domain.NumericSender(1),
		SenderType: domain.CustomerParticipant,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
		Type:       domain.TextMessage,
	}
}

func TestPipeline_Apply_Empty_Keeps_Message_Verbatim(t *testing.T) {
	req := require.New(t)
	message := newMessage("Buy now badword1")

	req.Equal(message, Pipeline{}.Apply(message))
	req.Equal(message, Pipeline(nil).Apply(message))
}

func TestPipeline_Apply_Order_Matters(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	options := DefaultStepOptions()

	spamFirst, err := ParseSteps([]string{"spam", "profanity"}, options, log)
	req.NoError(err)
	translationFirst, err := ParseSteps([]string{"translate:French", "spam"}, options, log)
	req.NoError(err)
	translationLast, err := ParseSteps([]string{"spam", "translate:French"}, options, log)
	req.NoError(err)

	// Given a spam message
	message := newMessage("free badword1")

	// Then spam detection runs on the unmasked content
	req.Equal(SpamReplacement, spamFirst.Apply(message).Content)

	// And the placeholder translation hides the keyword from the spam filter
	req.Equal("[Translated to French]: Lorem ipsum dolor sit amet, consectetur adipisici elit …",
		translationFirst.Apply(message).Content)
	req.Equal("[Translated to French]: Lorem ipsum dolor sit amet, consectetur adipisici elit …",
		translationLast.Apply(message).Content)
}

func TestPipeline_Apply_Profanity_Then_Spam(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	pipeline, err := ParseSteps([]string{"profanity", "spam"}, DefaultStepOptions(), log)
	req.NoError(err)

	processed := pipeline.Apply(newMessage("badword2 you"))

	req.Equal("******** you", processed.Content)
}

func TestPipeline_Apply_Protects_Identity_Fields(t *testing.T) {
	req := require.New(t)
	message := newMessage("hello")

	// When a step tries to replace the whole message
	processed := Pipeline{rewriteEverything{}, rewriteEverything{}}.Apply(message)

	// Then only the content is kept from its output
	req.Equal("hello!!", processed.Content)
	req.Equal(message.ID, processed.ID)
	req.Equal(message.SessionID, processed.SessionID)
	req.Equal(message.SenderID, processed.SenderID)
	req.Equal(message.CreatedAt, processed.CreatedAt)
}

func TestParseSteps(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	options := DefaultStepOptions()

	pipeline, err := ParseSteps([]string{" Spam ", "profanity", "translate", "translate:German"}, options, log)
	req.NoError(err)
	req.Len(pipeline, 4)
	req.Equal("spam", pipeline[0].Name())
	req.Equal("profanity", pipeline[1].Name())
	req.Equal("translate:Spanish", pipeline[2].Name())
	req.Equal("translate:German", pipeline[3].Name())

	_, err = ParseSteps([]string{"spam", "shout"}, options, log)
	req.ErrorIs(err, errors.ErrUnknownStep)
}

func TestSplitStepNames(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"spam", "profanity"}, SplitStepNames("spam| profanity |"))
	req.Nil(SplitStepNames(""))
}
