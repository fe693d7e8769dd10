package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "useraccount.UserAccountService"

const (
	UserAccountService_RegisterUser_FullMethodName    = "/useraccount.UserAccountService/RegisterUser"
	UserAccountService_Login_FullMethodName           = "/useraccount.UserAccountService/Login"
	UserAccountService_GetUser_FullMethodName         = "/useraccount.UserAccountService/GetUser"
	UserAccountService_UpdateUser_FullMethodName      = "/useraccount.UserAccountService/UpdateUser"
	UserAccountService_ChangePassword_FullMethodName  = "/useraccount.UserAccountService/ChangePassword"
	UserAccountService_DeleteUser_FullMethodName      = "/useraccount.UserAccountService/DeleteUser"
	UserAccountService_AssignAdminRole_FullMethodName = "/useraccount.UserAccountService/AssignAdminRole"
	UserAccountService_GetAllUsers_FullMethodName     = "/useraccount.UserAccountService/GetAllUsers"
	UserAccountService_GetAllAdmins_FullMethodName    = "/useraccount.UserAccountService/GetAllAdmins"
	UserAccountService_Ping_FullMethodName            = "/useraccount.UserAccountService/Ping"
)

// UserAccountServiceClient is the client API for UserAccountService.
type UserAccountServiceClient interface {
	RegisterUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error)
	UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error)
	ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error)
	DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error)
	AssignAdminRole(ctx context.Context, in *AssignRoleRequest, opts ...grpc.CallOption) (*AssignRoleResponse, error)
	GetAllUsers(ctx context.Context, in *GetAllRequest, opts ...grpc.CallOption) (*GetAllResponse, error)
	GetAllAdmins(ctx context.Context, in *GetAllRequest, opts ...grpc.CallOption) (*GetAdminResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
}

type userAccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserAccountServiceClient(cc grpc.ClientConnInterface) UserAccountServiceClient {
	return &userAccountServiceClient{cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAccountServiceClient) RegisterUser(ctx context.Context, in *CreateUserRequest, opts ...grpc.CallOption) (*CreateUserResponse, error) {
	return invoke[CreateUserResponse](ctx, c.cc, UserAccountService_RegisterUser_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, UserAccountService_Login_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) GetUser(ctx context.Context, in *GetUserRequest, opts ...grpc.CallOption) (*GetUserResponse, error) {
	return invoke[GetUserResponse](ctx, c.cc, UserAccountService_GetUser_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) UpdateUser(ctx context.Context, in *UpdateUserRequest, opts ...grpc.CallOption) (*UpdateUserResponse, error) {
	return invoke[UpdateUserResponse](ctx, c.cc, UserAccountService_UpdateUser_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*ChangePasswordResponse, error) {
	return invoke[ChangePasswordResponse](ctx, c.cc, UserAccountService_ChangePassword_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) DeleteUser(ctx context.Context, in *DeleteUserRequest, opts ...grpc.CallOption) (*DeleteUserResponse, error) {
	return invoke[DeleteUserResponse](ctx, c.cc, UserAccountService_DeleteUser_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) AssignAdminRole(ctx context.Context, in *AssignRoleRequest, opts ...grpc.CallOption) (*AssignRoleResponse, error) {
	return invoke[AssignRoleResponse](ctx, c.cc, UserAccountService_AssignAdminRole_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) GetAllUsers(ctx context.Context, in *GetAllRequest, opts ...grpc.CallOption) (*GetAllResponse, error) {
	return invoke[GetAllResponse](ctx, c.cc, UserAccountService_GetAllUsers_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) GetAllAdmins(ctx context.Context, in *GetAllRequest, opts ...grpc.CallOption) (*GetAdminResponse, error) {
	return invoke[GetAdminResponse](ctx, c.cc, UserAccountService_GetAllAdmins_FullMethodName, in, opts)
}

func (c *userAccountServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, UserAccountService_Ping_FullMethodName, in, opts)
}

// UserAccountServiceServer is the server API for UserAccountService.
// Implementations must embed UnimplementedUserAccountServiceServer.
type UserAccountServiceServer interface {
	RegisterUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error)
	UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
	DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error)
	AssignAdminRole(context.Context, *AssignRoleRequest) (*AssignRoleResponse, error)
	GetAllUsers(context.Context, *GetAllRequest) (*GetAllResponse, error)
	GetAllAdmins(context.Context, *GetAllRequest) (*GetAdminResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	mustEmbedUnimplementedUserAccountServiceServer()
}

type UnimplementedUserAccountServiceServer struct{}

func (UnimplementedUserAccountServiceServer) RegisterUser(context.Context, *CreateUserRequest) (*CreateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedUserAccountServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedUserAccountServiceServer) GetUser(context.Context, *GetUserRequest) (*GetUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUser not implemented")
}
func (UnimplementedUserAccountServiceServer) UpdateUser(context.Context, *UpdateUserRequest) (*UpdateUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateUser not implemented")
}
func (UnimplementedUserAccountServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChangePassword not implemented")
}
func (UnimplementedUserAccountServiceServer) DeleteUser(context.Context, *DeleteUserRequest) (*DeleteUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedUserAccountServiceServer) AssignAdminRole(context.Context, *AssignRoleRequest) (*AssignRoleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignAdminRole not implemented")
}
func (UnimplementedUserAccountServiceServer) GetAllUsers(context.Context, *GetAllRequest) (*GetAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllUsers not implemented")
}
func (UnimplementedUserAccountServiceServer) GetAllAdmins(context.Context, *GetAllRequest) (*GetAdminResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAllAdmins not implemented")
}
func (UnimplementedUserAccountServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedUserAccountServiceServer) mustEmbedUnimplementedUserAccountServiceServer() {}

func RegisterUserAccountServiceServer(s grpc.ServiceRegistrar, srv UserAccountServiceServer) {
	s.RegisterService(&UserAccountService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](method string, call func(UserAccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UserAccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UserAccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var UserAccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserAccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterUser", Handler: unaryHandler(UserAccountService_RegisterUser_FullMethodName, UserAccountServiceServer.RegisterUser)},
		{MethodName: "Login", Handler: unaryHandler(UserAccountService_Login_FullMethodName, UserAccountServiceServer.Login)},
		{MethodName: "GetUser", Handler: unaryHandler(UserAccountService_GetUser_FullMethodName, UserAccountServiceServer.GetUser)},
		{MethodName: "UpdateUser", Handler: unaryHandler(UserAccountService_UpdateUser_FullMethodName, UserAccountServiceServer.UpdateUser)},
		{MethodName: "ChangePassword", Handler: unaryHandler(UserAccountService_ChangePassword_FullMethodName, UserAccountServiceServer.ChangePassword)},
		{MethodName: "DeleteUser", Handler: unaryHandler(UserAccountService_DeleteUser_FullMethodName, UserAccountServiceServer.DeleteUser)},
		{MethodName: "AssignAdminRole", Handler: unaryHandler(UserAccountService_AssignAdminRole_FullMethodName, UserAccountServiceServer.AssignAdminRole)},
		{MethodName: "GetAllUsers", Handler: unaryHandler(UserAccountService_GetAllUsers_FullMethodName, UserAccountServiceServer.GetAllUsers)},
		{MethodName: "GetAllAdmins", Handler: unaryHandler(UserAccountService_GetAllAdmins_FullMethodName, UserAccountServiceServer.GetAllAdmins)},
		{MethodName: "Ping", Handler: unaryHandler(UserAccountService_Ping_FullMethodName, UserAccountServiceServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "useraccount.proto",
}
