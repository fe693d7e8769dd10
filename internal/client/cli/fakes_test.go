package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/accountsvc/internal/client/client"
	"github.com/dmitrijs2005/accountsvc/internal/client/config"
)

type fakeClient struct {
	loggedIn bool
	closed   bool

	registerArgs []string
	loginArgs    []string
	passwdArgs   []string
	lastEmail    string
	lastName     string
	lastPhone    string

	profile *client.Profile
	users   []*client.Profile
	err     error
	pingErr error
}

func (f *fakeClient) Close() error                   { f.closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeClient) LoggedIn() bool                 { return f.loggedIn }
func (f *fakeClient) Logout()                        { f.loggedIn = false }

func (f *fakeClient) Register(_ context.Context, email, name, phone, password string) (string, error) {
	f.registerArgs = []string{email, name, phone, password}
	if f.err != nil {
		return "", f.err
	}
	return "Registered " + email, nil
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, error) {
	f.loginArgs = []string{email, password}
	if f.err != nil {
		return "", f.err
	}
	f.loggedIn = true
	return "Ann", nil
}

func (f *fakeClient) GetProfile(_ context.Context, email string) (*client.Profile, error) {
	f.lastEmail = email
	return f.profile, f.err
}

func (f *fakeClient) UpdateProfile(_ context.Context, name, phone string) (*client.Profile, error) {
	f.lastName, f.lastPhone = name, phone
	if f.err != nil {
		return nil, f.err
	}
	return &client.Profile{Email: "ann@example.com", Name: name, PhoneNumber: phone}, nil
}

func (f *fakeClient) ChangePassword(_ context.Context, o, n, c string) (string, error) {
	f.passwdArgs = []string{o, n, c}
	return "Password changed", f.err
}

func (f *fakeClient) DeleteUser(_ context.Context, username string) (string, error) {
	f.lastEmail = username
	return "User deleted", f.err
}

func (f *fakeClient) AssignAdminRole(_ context.Context, email string) (string, error) {
	f.lastEmail = email
	return "Ann has been made an Admin", f.err
}

func (f *fakeClient) ListUsers(context.Context) ([]*client.Profile, error)  { return f.users, f.err }
func (f *fakeClient) ListAdmins(context.Context) ([]*client.Profile, error) { return f.users, f.err }

// newTestApp feeds lines as stdin and answers password prompts from pws in
// order.
func newTestApp(t *testing.T, fc *fakeClient, lines []string, pws ...string) (*App, *bytes.Buffer) {
	t.Helper()

	origPW := getPassword
	getPassword = func(string, io.Writer) (string, error) {
		if len(pws) == 0 {
			return "", io.EOF
		}
		pw := pws[0]
		pws = pws[1:]
		return pw, nil
	}
	t.Cleanup(func() { getPassword = origPW })

	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return newApp(cfg, fc, in, &out), &out
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
