package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the account service
//	-r int      request timeout in seconds
//	-o string   OTLP trace endpoint
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the server")
	timeout := fs.Int("r", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.OTelEndpoint, "o", config.OTelEndpoint, "OTLP trace endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, "-a", "-r", "-o")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	config.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
