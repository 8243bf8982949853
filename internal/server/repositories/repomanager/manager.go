// Package repomanager wires the account and session token stores to a
// storage backend and runs schema migrations for it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/sessiontokens"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Accounts() accounts.Repository
	SessionTokens() sessiontokens.Repository
	Close() error
}
