package moderation

import (
	"fmt"
	"log/slog"
	"strings"

	"support-chat/domain"
	"support-chat/errors"
)

// Pipeline applies its steps from left to right, each one receiving the output of the previous.
// Only the content travels from one step to the next: identity fields are left untouched.
type Pipeline []domain.MessageProcessor

func (p Pipeline) Apply(message domain.Message) domain.Message {
	for _, step := range p {
		message.Content = step.Process(message).Content
	}
	return message
}

type StepOptions struct {
	CensoredChar        rune
	TranslationLanguage string
	SpamKeywords        []string
	Profanities         []string
}

func DefaultStepOptions() StepOptions {
	return StepOptions{
		CensoredChar:        '*',
		TranslationLanguage: "Spanish",
		SpamKeywords:        DefaultSpamKeywords,
		Profanities:         DefaultProfanities,
	}
}

// ParseSteps builds a pipeline from step names such as "spam", "profanity" or "translate:French".
// A bare "translate" falls back on the configured language.
func ParseSteps(names []string, options StepOptions, log *slog.Logger) (Pipeline, error) {
	pipeline := make(Pipeline, 0, len(names))
	for _, raw := range names {
		name, arg, _ := strings.Cut(strings.TrimSpace(raw), ":")
		switch strings.ToLower(name) {
		case SpamStep:
			step, err := NewSpamFilter(options.SpamKeywords, log)
			if err != nil {
				return nil, err
			}
			pipeline = append(pipeline, step)
		case ProfanityStep:
			step, err := NewProfanityFilter(options.Profanities, options.CensoredChar, log)
			if err != nil {
				return nil, err
			}
			pipeline = append(pipeline, step)
		case TranslationStep:
			if arg == "" {
				arg = options.TranslationLanguage
			}
			pipeline = append(pipeline, NewTranslation(arg, log))
		default:
			return nil, fmt.Errorf("%w: %q", errors.ErrUnknownStep, raw)
		}
	}
	return pipeline, nil
}

// SplitStepNames reads the "|" separated list used in configuration.
func SplitStepNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, "|") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
