package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountsvc/internal/flagx"
	"github.com/dmitrijs2005/accountsvc/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "10h" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDriver        string         `json:"database_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	Issuer                string         `json:"issuer"`
	Audience              string         `json:"audience"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	LogLevel              string         `json:"log_level"`
	AdminEmail            string         `json:"admin_email"`
	RunMigrations         bool           `json:"run_migrations"`
	OTelEndpoint          string         `json:"otel_endpoint"`
}

// parseJson loads the file named by -c/-config (or ACCOUNTS_CONFIG). Keys
// missing from the file keep their current values.
func parseJson(config *Config, args []string) error {

	jsonConfigFile := flagx.ConfigPath(args, ConfigPathEnv)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{
		EndpointAddrGRPC:      config.EndpointAddrGRPC,
		EndpointAddrHTTP:      config.EndpointAddrHTTP,
		DatabaseDriver:        config.DatabaseDriver,
		DatabaseDSN:           config.DatabaseDSN,
		SecretKey:             config.SecretKey,
		Issuer:                config.Issuer,
		Audience:              config.Audience,
		TokenValidityDuration: timex.Duration{Duration: config.TokenValidityDuration},
		BcryptCost:            config.BcryptCost,
		LogLevel:              config.LogLevel,
		AdminEmail:            config.AdminEmail,
		RunMigrations:         config.RunMigrations,
		OTelEndpoint:          config.OTelEndpoint,
	}

	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.Issuer = c.Issuer
	config.Audience = c.Audience
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.BcryptCost = c.BcryptCost
	config.LogLevel = c.LogLevel
	config.AdminEmail = c.AdminEmail
	config.RunMigrations = c.RunMigrations
	config.OTelEndpoint = c.OTelEndpoint

	return nil
}
