package client

import "context"

// Profile is the public view of an account.
type Profile struct {
	ID          string
	Email       string
	Name        string
	PhoneNumber string
	Username    string
}

// Client is the account API the CLI depends on.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, name, phoneNumber, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout()
	LoggedIn() bool

	GetProfile(ctx context.Context, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, name, phoneNumber string) (*Profile, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword, confirmNewPassword string) (string, error)
	DeleteUser(ctx context.Context, username string) (string, error)
	AssignAdminRole(ctx context.Context, email string) (string, error)
	ListUsers(ctx context.Context) ([]*Profile, error)
	ListAdmins(ctx context.Context) ([]*Profile, error)
}
