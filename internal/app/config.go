package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Arguments   []string // build arguments forwarded from the command line
	ArgsFile    string   // optional file of shell-quoted arguments
	ProfileFile string   // hcl file or directory of profiles
	Profile     string

	Strict    bool // unrecognized arguments fail the run
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Profile != "" && cfg.ProfileFile == "" {
		return nil, errors.New("a profile was selected but no profile file was given")
	}
	return &cfg, nil
}
