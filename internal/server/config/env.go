package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "ACCOUNTS_"

// parseEnv overlays ACCOUNTS_* variables. Unset variables leave the field
// alone.
func parseEnv(config *Config, environ map[string]string) error {
	opts := env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
