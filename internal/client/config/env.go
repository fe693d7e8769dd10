package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

func parseEnv(config *Config, environ map[string]string) error {
	opts := env.Options{Prefix: "ACCOUNTS_CLI_", Environment: environ}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
