package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults for global CLI flags taken from the environment.
// Flags given on the command line win over these values.
type Env struct {
	DB      string `env:"NUMBERMATCH_DB" envDefault:"~/.numbermatch/scores.db"`
	FPS     int    `env:"NUMBERMATCH_FPS" envDefault:"60"`
	Seed    int64  `env:"NUMBERMATCH_SEED" envDefault:"0"`
	Lang    string `env:"NUMBERMATCH_LANG" envDefault:"en"`
	Log     string `env:"NUMBERMATCH_LOG"`
	Config  string `env:"NUMBERMATCH_CONFIG"`
	SSHAddr string `env:"NUMBERMATCH_SSH_ADDR" envDefault:":23234"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
