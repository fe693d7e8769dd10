package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/flagx"
)

var knownFlags = []string{"-a", "-g", "-b", "-d", "-s", "-i", "-u", "-t", "-l", "-m", "-o"}

// parseFlags overlays command-line flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-g string   HTTP/JSON gateway bind address, empty to disable (e.g., ":8080")
//	-b string   database driver, "pgx" or "sqlite"
//	-d string   database DSN
//	-s string   JWT HMAC secret
//	-i string   token issuer
//	-u string   token audience
//	-t int      token validity, minutes
//	-l string   log level
//	-m string   email of an existing account to promote to Admin on startup
//	-o string   OTLP/HTTP trace endpoint
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.EndpointAddrHTTP, "g", config.EndpointAddrHTTP, "address and port of the HTTP/JSON gateway")
	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (pgx|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "token issuer")
	fs.StringVar(&config.Audience, "u", config.Audience, "token audience")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.AdminEmail, "m", config.AdminEmail, "bootstrap admin email")
	fs.StringVar(&config.OTelEndpoint, "o", config.OTelEndpoint, "OTLP trace endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags...)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	return nil
}
