package sessiontokens

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]models.SessionToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]models.SessionToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, token string) (*models.SessionToken, error) {
	st := models.SessionToken{ID: uuid.NewString(), Token: token, CreatedAt: time.Now().UTC()}

	r.mu.Lock()
	r.tokens[token] = st
	r.mu.Unlock()

	return &st, nil
}

func (r *MemoryRepository) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &st, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token]; !ok {
		return false, nil
	}
	delete(r.tokens, token)
	return true, nil
}
