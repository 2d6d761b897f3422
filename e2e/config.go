package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// BASE_URL targets a running server, an in-process one is started when empty
	BaseURL string `envconfig:"BASE_URL"`
	// E2E_DEBUG_JSON dumps full request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
