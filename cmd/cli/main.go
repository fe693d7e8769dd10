package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/accountsvc/internal/client/cli"
	"github.com/dmitrijs2005/accountsvc/internal/client/config"
	"github.com/dmitrijs2005/accountsvc/internal/telemetry"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	shutdown, err := telemetry.Setup(ctx, "accountsvc-cli", cfg.OTelEndpoint)
	if err != nil {
		log.Printf("tracing disabled: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
