// Package config loads runtime configuration for the account CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c/-config or ACCOUNTS_CLI_CONFIG.
//  3. ACCOUNTS_CLI_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the account service
//	-r int      per-request timeout (seconds)
//	-o string   OTLP/HTTP trace endpoint
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "otel_endpoint": ""
//	}
package config
