package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/accountsvc/internal/common"
	"github.com/dmitrijs2005/accountsvc/internal/logging"
	pb "github.com/dmitrijs2005/accountsvc/internal/proto"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newHandlerServer() (*GRPCServer, *fakeAccounts) {
	f := &fakeAccounts{}
	return NewGRPCServer(":0", logging.Nop{}, f), f
}

func TestRegisterUser(t *testing.T) {
	s, f := newHandlerServer()

	resp, err := s.RegisterUser(context.Background(), &pb.CreateUserRequest{
		Email: "a@b.com", Name: "Ann", PhoneNumber: "+15551234567", Password: "Abcdef1!",
	})
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.GetMessage())
	assert.Equal(t, services.RegisterInput{Email: "a@b.com", Name: "Ann", PhoneNumber: "+15551234567", Password: "Abcdef1!"}, f.register)

	f.err = common.NewError(common.ErrorConflict, "Email 'a@b.com' is already taken.")
	_, err = s.RegisterUser(context.Background(), &pb.CreateUserRequest{Email: "a@b.com"})
	st := status.Convert(err)
	assert.Equal(t, codes.AlreadyExists, st.Code())
	assert.Equal(t, "Email 'a@b.com' is already taken.", st.Message())
}

func TestLogin(t *testing.T) {
	s, f := newHandlerServer()

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, &pb.LoginResponse{Token: "tok", Username: "a@b.com"}, resp)
	assert.Equal(t, "a@b.com/pw", f.arg)

	f.err = common.NewError(common.ErrorUnauthorized, "invalid email or password")
	_, err = s.Login(context.Background(), &pb.LoginRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGetAndUpdateUser(t *testing.T) {
	s, f := newHandlerServer()

	got, err := s.GetUser(context.Background(), &pb.GetUserRequest{Email: "ann@example.com"})
	require.NoError(t, err)
	assert.Equal(t, &pb.GetUserResponse{
		Id: "u-1", Email: "ann@example.com", Name: "Ann", PhoneNumber: "+12", Username: "ann@example.com",
	}, got)

	upd, err := s.UpdateUser(context.Background(), &pb.UpdateUserRequest{Name: "Annie", PhoneNumber: "+34"})
	require.NoError(t, err)
	assert.Equal(t, "Annie", upd.GetName())
	assert.Equal(t, "+34", upd.GetPhoneNumber())
	assert.Equal(t, services.UpdateProfileInput{Name: "Annie", PhoneNumber: "+34"}, f.update)

	f.err = common.NewError(common.ErrorInvalidInput, "Name field is required")
	_, err = s.UpdateUser(context.Background(), &pb.UpdateUserRequest{})
	st := status.Convert(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Name field is required", st.Message())

	f.err = common.NewError(common.ErrorNotFound, "user not found")
	_, err = s.GetUser(context.Background(), &pb.GetUserRequest{Email: "x@y.z"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestChangePassword(t *testing.T) {
	s, f := newHandlerServer()

	resp, err := s.ChangePassword(context.Background(), &pb.ChangePasswordRequest{
		OldPassword: "a", NewPassword: "b", ConfirmNewPassword: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "Password changed", resp.GetResponse())
	assert.Equal(t, services.ChangePasswordInput{OldPassword: "a", NewPassword: "b", ConfirmNewPassword: "c"}, f.change)
}

func TestAdminHandlers(t *testing.T) {
	s, f := newHandlerServer()
	f.profiles = []*models.Profile{{ID: "1", Email: "a@x.com"}, {ID: "2", Email: "b@x.com"}}

	del, err := s.DeleteUser(context.Background(), &pb.DeleteUserRequest{Username: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", del.GetResponse())
	assert.Equal(t, "a@x.com", f.arg)

	as, err := s.AssignAdminRole(context.Background(), &pb.AssignRoleRequest{Email: "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ann has been made an Admin", as.GetResponse())

	all, err := s.GetAllUsers(context.Background(), &pb.GetAllRequest{})
	require.NoError(t, err)
	require.Len(t, all.GetUsers(), 2)
	assert.Equal(t, "b@x.com", all.GetUsers()[1].GetEmail())

	admins, err := s.GetAllAdmins(context.Background(), &pb.GetAllRequest{})
	require.NoError(t, err)
	assert.Len(t, admins.GetAdmins(), 2)

	f.err = common.NewError(common.ErrorForbidden, "permission denied")
	for _, call := range []func() error{
		func() error { _, err := s.DeleteUser(context.Background(), &pb.DeleteUserRequest{}); return err },
		func() error { _, err := s.AssignAdminRole(context.Background(), &pb.AssignRoleRequest{}); return err },
		func() error { _, err := s.GetAllUsers(context.Background(), &pb.GetAllRequest{}); return err },
		func() error { _, err := s.GetAllAdmins(context.Background(), &pb.GetAllRequest{}); return err },
	} {
		assert.Equal(t, codes.PermissionDenied, status.Code(call()))
	}
}

func TestPing(t *testing.T) {
	s, _ := newHandlerServer()
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.GetStatus())
}
