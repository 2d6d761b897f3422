package internal

import (
	"testing"

	"support-chat/moderation"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestCharacterRune(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    rune
		wantErr     bool
	}{
		{"Should accept a single ascii character", "*", '*', false},
		{"Should accept a single multibyte character", "█", '█', false},
		{"Should reject an empty string", "", 0, true},
		{"Should reject several characters", "**", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			r, err := CharacterRune(tt.input)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.expected, r)
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	req.NoError(env.Unmarshal(env.EnvSet{}, &config))

	options, err := config.StepOptions()
	req.NoError(err)
	req.Equal('*', options.CensoredChar)
	req.Equal("Spanish", options.TranslationLanguage)
	req.Equal(moderation.DefaultSpamKeywords, options.SpamKeywords)
	req.Equal("localhost:8080", config.Address())
	req.Equal([]string{"spam", "profanity"}, moderation.SplitStepNames(config.DefaultPipeline))
}

func TestConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	environment := env.EnvSet{
		"CHARACTER_REPLACEMENT": "#",
		"TRANSLATION_LANGUAGE":  "French",
		"LIMIT_MESSAGES":        "5",
		"PORT":                  "9090",
	}

	var config Config
	req.NoError(env.Unmarshal(environment, &config))

	options, err := config.StepOptions()
	req.NoError(err)
	req.Equal('#', options.CensoredChar)
	req.Equal("French", options.TranslationLanguage)
	req.NotNil(config.LimitMessages)
	req.Equal(5, *config.LimitMessages)
	req.Equal(9090, config.Port)
}
