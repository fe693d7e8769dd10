package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.UserAccountServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient builds a lazily connecting client. timeout bounds every
// call; zero means no extra deadline. extra options are appended, which
// lets tests dial an in-memory listener.
func NewGRPCClient(endpointURL string, timeout time.Duration, extra ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewUserAccountServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) LoggedIn() bool { return s.token() != "" }

// Logout forgets the token locally. Tokens are stateless so nothing is sent
// to the server.
func (s *GRPCClient) Logout() { s.setToken("") }

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, name, phoneNumber, password string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.CreateUserRequest{Email: email, Name: name, PhoneNumber: phoneNumber, Password: password}
	resp, err := s.client.RegisterUser(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetMessage(), nil
}

// Login stores the issued token and returns the display name.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", mapError(err)
	}

	s.setToken(resp.GetToken())
	return resp.GetUsername(), nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, email string) (*Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return profileFrom(resp), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, name, phoneNumber string) (*Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.UpdateUser(ctx, &pb.UpdateUserRequest{Name: name, PhoneNumber: phoneNumber})
	if err != nil {
		return nil, mapError(err)
	}
	return &Profile{
		ID:          resp.GetId(),
		Email:       resp.GetEmail(),
		Name:        resp.GetName(),
		PhoneNumber: resp.GetPhoneNumber(),
		Username:    resp.GetUsername(),
	}, nil
}

func (s *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.ChangePasswordRequest{
		OldPassword:        oldPassword,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirmNewPassword,
	}
	resp, err := s.client.ChangePassword(ctx, req)
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetResponse(), nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, username string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.DeleteUser(ctx, &pb.DeleteUserRequest{Username: username})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetResponse(), nil
}

func (s *GRPCClient) AssignAdminRole(ctx context.Context, email string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.AssignAdminRole(ctx, &pb.AssignRoleRequest{Email: email})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetResponse(), nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]*Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetAllUsers(ctx, &pb.GetAllRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return profilesFrom(resp.GetUsers()), nil
}

func (s *GRPCClient) ListAdmins(ctx context.Context) ([]*Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetAllAdmins(ctx, &pb.GetAllRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return profilesFrom(resp.GetAdmins()), nil
}

func profileFrom(u *pb.GetUserResponse) *Profile {
	return &Profile{
		ID:          u.GetId(),
		Email:       u.GetEmail(),
		Name:        u.GetName(),
		PhoneNumber: u.GetPhoneNumber(),
		Username:    u.GetUsername(),
	}
}

func profilesFrom(in []*pb.GetUserResponse) []*Profile {
	out := make([]*Profile, 0, len(in))
	for _, u := range in {
		out = append(out, profileFrom(u))
	}
	return out
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return &RemoteError{Code: st.Code(), Message: st.Message()}
	}
}
