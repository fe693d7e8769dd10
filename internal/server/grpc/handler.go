package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/services"
)

func toUserResponse(p *models.Profile) *pb.GetUserResponse {
	return &pb.GetUserResponse{
		Id:          p.ID,
		Email:       p.Email,
		Name:        p.Name,
		PhoneNumber: p.PhoneNumber,
		Username:    p.UserName,
	}
}

func toUserResponses(ps []*models.Profile) []*pb.GetUserResponse {
	out := make([]*pb.GetUserResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toUserResponse(p))
	}
	return out
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {

	msg, err := s.accounts.Register(ctx, services.RegisterInput{
		Email:       req.GetEmail(),
		Name:        req.GetName(),
		PhoneNumber: req.GetPhoneNumber(),
		Password:    req.GetPassword(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterUser", err)
	}

	s.logger.Info(ctx, "Registered", "email", req.GetEmail())
	return &pb.CreateUserResponse{Message: msg}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.accounts.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, "Login", err)
	}

	return &pb.LoginResponse{Token: res.Token, Username: res.UserName}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.GetUserResponse, error) {

	p, err := s.accounts.GetProfile(ctx, req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "GetUser", err)
	}

	return toUserResponse(p), nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {

	p, err := s.accounts.UpdateProfile(ctx, services.UpdateProfileInput{
		Name:        req.GetName(),
		PhoneNumber: req.GetPhoneNumber(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "UpdateUser", err)
	}

	return &pb.UpdateUserResponse{
		Id:          p.ID,
		Email:       p.Email,
		Name:        p.Name,
		PhoneNumber: p.PhoneNumber,
		Username:    p.UserName,
	}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {

	msg, err := s.accounts.ChangePassword(ctx, services.ChangePasswordInput{
		OldPassword:        req.GetOldPassword(),
		NewPassword:        req.GetNewPassword(),
		ConfirmNewPassword: req.GetConfirmNewPassword(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "ChangePassword", err)
	}

	return &pb.ChangePasswordResponse{Response: msg}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {

	msg, err := s.accounts.DeleteAccount(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, "DeleteUser", err)
	}

	s.logger.Info(ctx, "Deleted", "username", req.GetUsername())
	return &pb.DeleteUserResponse{Response: msg}, nil
}

func (s *GRPCServer) AssignAdminRole(ctx context.Context, req *pb.AssignRoleRequest) (*pb.AssignRoleResponse, error) {

	msg, err := s.accounts.AssignAdminRole(ctx, req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "AssignAdminRole", err)
	}

	s.logger.Info(ctx, "Admin role assigned", "email", req.GetEmail())
	return &pb.AssignRoleResponse{Response: msg}, nil
}

func (s *GRPCServer) GetAllUsers(ctx context.Context, _ *pb.GetAllRequest) (*pb.GetAllResponse, error) {

	ps, err := s.accounts.ListAllUsers(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "GetAllUsers", err)
	}

	return &pb.GetAllResponse{Users: toUserResponses(ps)}, nil
}

func (s *GRPCServer) GetAllAdmins(ctx context.Context, _ *pb.GetAllRequest) (*pb.GetAdminResponse, error) {

	ps, err := s.accounts.ListAllAdmins(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "GetAllAdmins", err)
	}

	return &pb.GetAdminResponse{Admins: toUserResponses(ps)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
