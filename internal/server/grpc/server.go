package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/accountsvc/internal/logging"
	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountService is the business API the handlers delegate to.
// *services.AccountService implements it.
type AccountService interface {
	Register(ctx context.Context, in services.RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	GetProfile(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, in services.UpdateProfileInput) (*models.Profile, error)
	ChangePassword(ctx context.Context, in services.ChangePasswordInput) (string, error)
	DeleteAccount(ctx context.Context, username string) (string, error)
	AssignAdminRole(ctx context.Context, email string) (string, error)
	ListAllUsers(ctx context.Context) ([]*models.Profile, error)
	ListAllAdmins(ctx context.Context) ([]*models.Profile, error)
}

type GRPCServer struct {
	pb.UnimplementedUserAccountServiceServer
	address  string
	accounts AccountService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, accounts AccountService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: accounts,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)

	pb.RegisterUserAccountServiceServer(srv, s)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		healthSrv.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
