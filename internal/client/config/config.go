package config

import (
	"os"
	"time"
)

// ConfigPathEnv names the JSON config file when -c/-config is absent.
const ConfigPathEnv = "ACCOUNTS_CLI_CONFIG"

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ADDR"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
	OTelEndpoint       string        `env:"OTEL_ENDPOINT"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig applies defaults, the JSON file, the environment and flags in
// that order.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:], nil)
}

func load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
