package grpc

import (
	"context"

	"github.com/dmitrijs2005/accountsvc/internal/server/auth"
	"github.com/dmitrijs2005/accountsvc/internal/server/models"
	"github.com/dmitrijs2005/accountsvc/internal/server/services"
)

type fakeAccounts struct {
	err error

	token    string
	register services.RegisterInput
	update   services.UpdateProfileInput
	change   services.ChangePasswordInput
	arg      string

	profiles []*models.Profile
}

func (f *fakeAccounts) seen(ctx context.Context) {
	f.token, _ = auth.TokenFromContext(ctx)
}

func (f *fakeAccounts) Register(ctx context.Context, in services.RegisterInput) (string, error) {
	f.seen(ctx)
	f.register = in
	return "User registered successfully", f.err
}

func (f *fakeAccounts) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	f.seen(ctx)
	f.arg = email + "/" + password
	if f.err != nil {
		return nil, f.err
	}
	return &services.LoginResult{Token: "tok", UserName: email}, nil
}

func (f *fakeAccounts) GetProfile(ctx context.Context, email string) (*models.Profile, error) {
	f.seen(ctx)
	f.arg = email
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{ID: "u-1", Email: email, Name: "Ann", PhoneNumber: "+12", UserName: email}, nil
}

func (f *fakeAccounts) UpdateProfile(ctx context.Context, in services.UpdateProfileInput) (*models.Profile, error) {
	f.seen(ctx)
	f.update = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Profile{ID: "u-1", Email: "ann@example.com", Name: in.Name, PhoneNumber: in.PhoneNumber, UserName: "ann@example.com"}, nil
}

func (f *fakeAccounts) ChangePassword(ctx context.Context, in services.ChangePasswordInput) (string, error) {
	f.seen(ctx)
	f.change = in
	return "Password changed", f.err
}

func (f *fakeAccounts) DeleteAccount(ctx context.Context, username string) (string, error) {
	f.seen(ctx)
	f.arg = username
	return "User deleted successfully", f.err
}

func (f *fakeAccounts) AssignAdminRole(ctx context.Context, email string) (string, error) {
	f.seen(ctx)
	f.arg = email
	return "Ann has been made an Admin", f.err
}

func (f *fakeAccounts) ListAllUsers(ctx context.Context) ([]*models.Profile, error) {
	f.seen(ctx)
	return f.profiles, f.err
}

func (f *fakeAccounts) ListAllAdmins(ctx context.Context) ([]*models.Profile, error) {
	f.seen(ctx)
	return f.profiles, f.err
}
