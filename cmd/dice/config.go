package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the defaults read from the environment. Flags override
// every field.
type config struct {
	Kind    string `env:"DICE_KIND"    envDefault:"standard"`
	Seed    int64  `env:"DICE_SEED"`
	Presets string `env:"DICE_PRESETS"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
