package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/accountsvc/internal/client/client"
)

var errNotLoggedIn = errors.New("not logged in")

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) prompt(text string) (string, error) {
	return getSimpleText(a.reader, text, a.out)
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

func (a *App) Register(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	name, err := a.prompt("Enter name")
	if err != nil {
		return err
	}
	phone, err := a.prompt("Enter phone number")
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.client.Register(ctx, email, name, phone, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	name, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.email = email
	a.userName = name
	fmt.Fprintf(a.out, "Welcome, %s!\n", name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	p, err := a.client.GetProfile(ctx, a.email)
	if err != nil {
		return err
	}
	printProfile(a, p)
	return nil
}

func (a *App) UpdateProfile(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	name, err := a.prompt("Enter new name")
	if err != nil {
		return err
	}
	phone, err := a.prompt("Enter new phone number")
	if err != nil {
		return err
	}

	p, err := a.client.UpdateProfile(ctx, name, phone)
	if err != nil {
		return err
	}

	a.userName = p.Name
	printProfile(a, p)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	oldPassword, err := getPassword("Old password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}

	msg, err := a.client.ChangePassword(ctx, oldPassword, newPassword, confirm)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	username, err := a.prompt("Email of the account to delete")
	if err != nil {
		return err
	}

	msg, err := a.client.DeleteUser(ctx, username)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Promote(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	email, err := a.prompt("Email of the account to make Admin")
	if err != nil {
		return err
	}

	msg, err := a.client.AssignAdminRole(ctx, email)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) ListUsers(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return err
	}
	printTable(a, users)
	return nil
}

func (a *App) ListAdmins(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	admins, err := a.client.ListAdmins(ctx)
	if err != nil {
		return err
	}
	printTable(a, admins)
	return nil
}

func printProfile(a *App, p *client.Profile) {
	fmt.Fprintf(a.out, "ID:       %s\nEmail:    %s\nName:     %s\nPhone:    %s\n", p.ID, p.Email, p.Name, p.PhoneNumber)
}

func printTable(a *App, list []*client.Profile) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "(none)")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMAIL\tNAME\tPHONE")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Email, p.Name, p.PhoneNumber)
	}
	_ = tw.Flush()
}
