package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountsvc/internal/flagx"
	"github.com/dmitrijs2005/accountsvc/internal/timex"
)

type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	OTelEndpoint       string         `json:"otel_endpoint"`
}

func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args, ConfigPathEnv)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		ServerEndpointAddr: config.ServerEndpointAddr,
		RequestTimeout:     timex.Duration{Duration: config.RequestTimeout},
		OTelEndpoint:       config.OTelEndpoint,
	}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.RequestTimeout = c.RequestTimeout.Duration
	config.OTelEndpoint = c.OTelEndpoint
	return nil
}
