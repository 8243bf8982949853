package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccounts/internal/client/client"
	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/dmitrijs2005/useraccounts/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for names, email and password and creates an account.
// The new session becomes current.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	account, err := a.authService.Register(ctx, req)
	if err != nil {
		a.report("Registration failed", err)
		return err
	}

	a.account = account
	fmt.Fprintf(a.out, "Registered %s %s <%s>\n", account.FirstName, account.LastName, account.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.report("Login failed", err)
		return err
	}

	a.account = account
	fmt.Fprintf(a.out, "Welcome back, %s!\n", account.FirstName)
	return nil
}

// WhoAmI re-authenticates with the current session token.
func (a *App) WhoAmI(ctx context.Context) error {
	account, err := a.authService.WhoAmI(ctx)
	if err != nil {
		a.account = nil
		a.report("Not logged in", err)
		return err
	}

	a.account = account
	fmt.Fprintf(a.out, "%s %s <%s>\n", account.FirstName, account.LastName, account.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	if err != nil && errors.Is(err, client.ErrUnavailable) {
		a.report("Logout failed", err)
		return err
	}

	a.account = nil
	if err != nil {
		a.report("Session was already closed", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// report prints a user-facing message for err, preferring the server's own
// wording when there is one.
func (a *App) report(prefix string, err error) {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "%s: %s\n", prefix, apiErr.Message)
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintf(a.out, "%s: server unavailable\n", prefix)
	default:
		fmt.Fprintf(a.out, "%s: %s\n", prefix, err.Error())
	}
}
