package internal

import (
	"fmt"
	"time"

	"support-chat/moderation"
)

type Config struct {
	Host                string        `env:"HOST,default=localhost"`
	Port                int           `env:"PORT,default=8080"`
	LogLevel            string        `env:"LOG_LEVEL,default=INFO"`
	CharReplacement     string        `env:"CHARACTER_REPLACEMENT,default=*"`
	DefaultPipeline     string        `env:"DEFAULT_PIPELINE,default=spam|profanity"`
	LimitMessages       *int          `env:"LIMIT_MESSAGES"`
	TranslationLanguage string        `env:"TRANSLATION_LANGUAGE,default=Spanish"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// StepOptions turns the moderation settings into pipeline step options.
func (c Config) StepOptions() (moderation.StepOptions, error) {
	char, err := CharacterRune(c.CharReplacement)
	if err != nil {
		return moderation.StepOptions{}, err
	}
	options := moderation.DefaultStepOptions()
	options.CensoredChar = char
	if c.TranslationLanguage != "" {
		options.TranslationLanguage = c.TranslationLanguage
	}
	return options, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
