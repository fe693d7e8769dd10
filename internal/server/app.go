// Package server wires configuration, storage, token handling, the gRPC
// transport and its HTTP/JSON gateway into a runnable account service.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"github.com/dmitrijs2005/accountsvc/internal/cryptox"
	"github.com/dmitrijs2005/accountsvc/internal/logging"
	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"github.com/dmitrijs2005/accountsvc/internal/server/auth"
	"github.com/dmitrijs2005/accountsvc/internal/server/config"
	"github.com/dmitrijs2005/accountsvc/internal/server/gateway"
	"github.com/dmitrijs2005/accountsvc/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountsvc/internal/server/services"
	"github.com/dmitrijs2005/accountsvc/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	gs "github.com/dmitrijs2005/accountsvc/internal/server/grpc"
)

const serviceName = "accountsvc"

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	accounts *services.AccountService
}

// NewApp opens the database, applies migrations when enabled and builds the
// account service. Log lines go to out.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {

	logger, err := logging.NewJSONLogger(out, c.LogLevel)
	if err != nil {
		return nil, err
	}

	m, err := repomanager.NewRepositoryManager(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if c.RunMigrations {
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	secret := []byte(c.SecretKey)

	issuer, err := auth.NewIssuer(secret, c.Issuer, c.Audience, c.TokenValidityDuration)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	verifier, err := auth.NewVerifier(secret, c.Issuer, c.Audience)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	accounts := services.NewAccountService(db, m, cryptox.NewBcryptHasher(c.BcryptCost), issuer, auth.NewGuard(verifier))

	return &App{config: c, logger: logger, db: db, accounts: accounts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// bootstrapAdmin promotes the configured account. A missing account is only
// a warning so a fresh database can still start.
func (app *App) bootstrapAdmin(ctx context.Context) error {
	if app.config.AdminEmail == "" {
		return nil
	}

	err := app.accounts.EnsureAdmin(ctx, app.config.AdminEmail)
	switch {
	case err == nil:
		app.logger.Info(ctx, "bootstrap admin ensured", "email", app.config.AdminEmail)
		return nil
	case errors.Is(err, common.ErrorNotFound):
		app.logger.Warn(ctx, "bootstrap admin not registered yet", "email", app.config.AdminEmail)
		return nil
	default:
		return fmt.Errorf("bootstrap admin: %w", err)
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.accounts)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// loopbackTarget turns a listen address into one the gateway can dial:
// an empty or wildcard host becomes the loopback interface.
func loopbackTarget(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

func (app *App) startHTTPGateway(ctx context.Context, cancelFunc context.CancelFunc) error {
	conn, err := grpc.NewClient(loopbackTarget(app.config.EndpointAddrGRPC),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	defer conn.Close()

	g, err := gateway.NewGateway(app.config.EndpointAddrHTTP, app.logger, pb.NewUserAccountServiceClient(conn))
	if err != nil {
		cancelFunc()
		return err
	}

	if err := g.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// flushes traces and closes the database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, app.config.OTelEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			app.logger.Warn(context.Background(), "trace flush failed", "error", err)
		}
	}()
	defer app.db.Close()

	if err := app.bootstrapAdmin(ctx); err != nil {
		return err
	}

	var (
		wg         sync.WaitGroup
		grpcErr    error
		gatewayErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		grpcErr = app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrHTTP != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			gatewayErr = app.startHTTPGateway(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return errors.Join(grpcErr, gatewayErr)
}
