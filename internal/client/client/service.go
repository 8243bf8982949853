package client

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/client/models"
)

// Client is the API surface of the user-accounts server used by the CLI.
// Implementations keep the current session token and send it with Logout
// and WhoAmI.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.Account, error)
	Ping(ctx context.Context) error

	Token() string
	SetToken(token string)
}
