package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/accountsvc/internal/client/client"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Promote(ctx context.Context) error
	ListUsers(ctx context.Context) error
	ListAdmins(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: profile, update, passwd, users, admins, promote, delete, logout, exit"
)

// runREPL reads one command per line and dispatches it until "exit"/"quit"
// or end of input. Command errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "acct %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "update":
			cmdErr = a.UpdateProfile(ctx)
		case "passwd":
			cmdErr = a.ChangePassword(ctx)
		case "delete":
			cmdErr = a.DeleteAccount(ctx)
		case "promote":
			cmdErr = a.Promote(ctx)
		case "users":
			cmdErr = a.ListUsers(ctx)
		case "admins":
			cmdErr = a.ListAdmins(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, describeError(cmdErr))
		}
	}
}

func describeError(err error) string {
	var re *client.RemoteError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Error: server unavailable, try again later"
	case errors.Is(err, client.ErrForbidden):
		return "Error: you are not allowed to do that"
	case errors.Is(err, errNotLoggedIn):
		return "Error: please log in first"
	case errors.As(err, &re):
		return "Error: " + re.Message
	default:
		return "Error: " + err.Error()
	}
}
