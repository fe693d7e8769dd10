// Package gateway serves every UserAccountService RPC as HTTP/JSON. Requests
// are decoded into the service messages, forwarded to the gRPC endpoint and
// answered with the JSON form of the reply; gRPC status codes become HTTP
// status codes.
package gateway

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/accountsvc/internal/logging"
	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const shutdownTimeout = 5 * time.Second

// call forwards one decoded HTTP request to the service.
type call func(ctx context.Context, dec runtime.Decoder, params map[string]string, opts ...grpc.CallOption) (any, error)

type route struct {
	method  string
	pattern string
	rpc     string
	call    call
}

type Gateway struct {
	address string
	logger  logging.Logger
	client  pb.UserAccountServiceClient
	mux     *runtime.ServeMux
}

// NewGateway builds the HTTP routes on top of client.
func NewGateway(a string, l logging.Logger, client pb.UserAccountServiceClient) (*Gateway, error) {
	g := &Gateway{
		address: a,
		logger:  l.With("module", "http_gateway"),
		client:  client,
		mux: runtime.NewServeMux(
			runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONBuiltin{}),
			runtime.WithUnescapingMode(runtime.UnescapingModeAllCharacters),
		),
	}

	for _, r := range g.routes() {
		if err := g.mux.HandlePath(r.method, r.pattern, g.handle(r)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Gateway) Handler() http.Handler {
	return g.mux
}

func (g *Gateway) routes() []route {
	c := g.client
	return []route{
		{http.MethodPost, "/v1/users", pb.UserAccountService_RegisterUser_FullMethodName,
			func(ctx context.Context, dec runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				var req pb.CreateUserRequest
				if err := decodeBody(dec, &req); err != nil {
					return nil, err
				}
				return c.RegisterUser(ctx, &req, opts...)
			}},
		{http.MethodPost, "/v1/login", pb.UserAccountService_Login_FullMethodName,
			func(ctx context.Context, dec runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				var req pb.LoginRequest
				if err := decodeBody(dec, &req); err != nil {
					return nil, err
				}
				return c.Login(ctx, &req, opts...)
			}},
		{http.MethodGet, "/v1/users", pb.UserAccountService_GetAllUsers_FullMethodName,
			func(ctx context.Context, _ runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				return c.GetAllUsers(ctx, &pb.GetAllRequest{}, opts...)
			}},
		{http.MethodGet, "/v1/users/{email}", pb.UserAccountService_GetUser_FullMethodName,
			func(ctx context.Context, _ runtime.Decoder, params map[string]string, opts ...grpc.CallOption) (any, error) {
				return c.GetUser(ctx, &pb.GetUserRequest{Email: params["email"]}, opts...)
			}},
		{http.MethodPut, "/v1/users/me", pb.UserAccountService_UpdateUser_FullMethodName,
			func(ctx context.Context, dec runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				var req pb.UpdateUserRequest
				if err := decodeBody(dec, &req); err != nil {
					return nil, err
				}
				return c.UpdateUser(ctx, &req, opts...)
			}},
		{http.MethodPost, "/v1/users/me/password", pb.UserAccountService_ChangePassword_FullMethodName,
			func(ctx context.Context, dec runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				var req pb.ChangePasswordRequest
				if err := decodeBody(dec, &req); err != nil {
					return nil, err
				}
				return c.ChangePassword(ctx, &req, opts...)
			}},
		{http.MethodDelete, "/v1/users/{username}", pb.UserAccountService_DeleteUser_FullMethodName,
			func(ctx context.Context, _ runtime.Decoder, params map[string]string, opts ...grpc.CallOption) (any, error) {
				return c.DeleteUser(ctx, &pb.DeleteUserRequest{Username: params["username"]}, opts...)
			}},
		{http.MethodGet, "/v1/admins", pb.UserAccountService_GetAllAdmins_FullMethodName,
			func(ctx context.Context, _ runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				return c.GetAllAdmins(ctx, &pb.GetAllRequest{}, opts...)
			}},
		{http.MethodPost, "/v1/admins", pb.UserAccountService_AssignAdminRole_FullMethodName,
			func(ctx context.Context, dec runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				var req pb.AssignRoleRequest
				if err := decodeBody(dec, &req); err != nil {
					return nil, err
				}
				return c.AssignAdminRole(ctx, &req, opts...)
			}},
		{http.MethodGet, "/v1/ping", pb.UserAccountService_Ping_FullMethodName,
			func(ctx context.Context, _ runtime.Decoder, _ map[string]string, opts ...grpc.CallOption) (any, error) {
				return c.Ping(ctx, &pb.PingRequest{}, opts...)
			}},
	}
}

// decodeBody accepts an empty body as an empty message.
func decodeBody(dec runtime.Decoder, v any) error {
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return status.Errorf(codes.InvalidArgument, "%v", err)
	}
	return nil
}

func (g *Gateway) handle(rt route) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		start := time.Now()
		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		inbound, outbound := runtime.MarshalerForRequest(g.mux, r)

		annotated, err := runtime.AnnotateContext(ctx, g.mux, r, rt.rpc, runtime.WithHTTPPathPattern(rt.pattern))
		if err != nil {
			runtime.HTTPError(ctx, g.mux, outbound, w, r, err)
			return
		}

		var md runtime.ServerMetadata
		resp, err := rt.call(annotated, inbound.NewDecoder(r.Body), params, grpc.Header(&md.HeaderMD), grpc.Trailer(&md.TrailerMD))
		annotated = runtime.NewServerMetadataContext(annotated, md)

		g.logger.Info(annotated, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)

		if err != nil {
			runtime.HTTPError(annotated, g.mux, outbound, w, r, err)
			return
		}

		body, err := outbound.Marshal(resp)
		if err != nil {
			runtime.HTTPError(annotated, g.mux, outbound, w, r, status.Error(codes.Internal, "marshal response"))
			return
		}
		w.Header().Set("Content-Type", outbound.ContentType(resp))
		if _, err := w.Write(body); err != nil {
			g.logger.Warn(annotated, "write response", "error", err)
		}
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	return g.Serve(ctx, lis)
}

// Serve serves on lis until ctx is cancelled, then drains open requests.
func (g *Gateway) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           g.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		g.logger.Info(ctx, "Stopping HTTP gateway...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	g.logger.Info(ctx, "Starting HTTP gateway", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
