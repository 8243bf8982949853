// Package services contains application services for the CLI. The
// authentication service wraps the API client and keeps the session token in
// the local database so a session survives restarts.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccounts/internal/client/client"
	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/dmitrijs2005/useraccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/useraccounts/internal/common"
)

// tokenKey is the metadata key holding the session token.
const tokenKey = "auth_token"

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: load a saved session token into the client.
//   - Register / Login: call the server and persist the issued token.
//   - Logout: revoke the session on the server and forget it locally.
//   - WhoAmI: re-authenticate with the saved token.
//   - HasSession: report whether a token is currently held.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Restore(ctx context.Context) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, email string, password []byte) (*models.Account, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.Account, error)
	HasSession() bool
}

type authService struct {
	client client.Client
	meta   metadata.Repository
}

// NewAuthService constructs an AuthService bound to the given API client and
// metadata store.
func NewAuthService(c client.Client, meta metadata.Repository) AuthService {
	return &authService{client: c, meta: meta}
}

func (a *authService) Restore(ctx context.Context) error {
	token, err := a.meta.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}
	a.client.SetToken(token)
	return nil
}

func (a *authService) HasSession() bool {
	return a.client.Token() != ""
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error) {
	account, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := a.saveToken(ctx); err != nil {
		return nil, err
	}
	return account, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Account, error) {
	account, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if err := a.saveToken(ctx); err != nil {
		return nil, err
	}
	return account, nil
}

// Logout forgets the local token unless the server could not be reached.
func (a *authService) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	if errors.Is(err, client.ErrUnavailable) {
		return err
	}

	a.client.SetToken("")
	if derr := a.meta.Delete(ctx, tokenKey); derr != nil {
		return errors.Join(err, derr)
	}
	return err
}

// WhoAmI drops the saved token when the server no longer accepts it.
func (a *authService) WhoAmI(ctx context.Context) (*models.Account, error) {
	account, err := a.client.WhoAmI(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNoSession) {
			a.client.SetToken("")
			if derr := a.meta.Delete(ctx, tokenKey); derr != nil {
				return nil, errors.Join(err, derr)
			}
		}
		return nil, err
	}
	return account, nil
}

func (a *authService) saveToken(ctx context.Context) error {
	token := a.client.Token()
	if token == "" {
		return fmt.Errorf("server did not issue a session token")
	}
	if err := a.meta.Set(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
