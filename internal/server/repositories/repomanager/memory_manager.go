package repomanager

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/sessiontokens"
)

// InMemoryRepositoryManager backs the "memory" storage mode. Data is lost
// on restart.
type InMemoryRepositoryManager struct {
	accounts      *accounts.MemoryRepository
	sessionTokens *sessiontokens.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		accounts:      accounts.NewMemoryRepository(),
		sessionTokens: sessiontokens.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Accounts() accounts.Repository { return m.accounts }

func (m *InMemoryRepositoryManager) SessionTokens() sessiontokens.Repository {
	return m.sessionTokens
}

func (m *InMemoryRepositoryManager) Close() error { return nil }
