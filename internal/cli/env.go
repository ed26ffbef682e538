package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults are the option defaults read from the environment. Explicit
// command-line options override them.
type envDefaults struct {
	LogLevel    string `env:"ARGLINE_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"ARGLINE_LOG_FORMAT" envDefault:"text"`
	ProfileFile string `env:"ARGLINE_PROFILE_FILE"`
	Profile     string `env:"ARGLINE_PROFILE"`
	Strict      bool   `env:"ARGLINE_STRICT"`
}

func loadEnvDefaults() (envDefaults, error) {
	var d envDefaults
	if err := env.Parse(&d); err != nil {
		return envDefaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
