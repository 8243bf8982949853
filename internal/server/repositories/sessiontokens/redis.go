package sessiontokens

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/server/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "session:"

	fieldID        = "id"
	fieldCreatedAt = "created_at"
)

// RedisRepository keeps each token as a hash under prefix+token. Keys are
// written without TTL; they live until Delete.
type RedisRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisRepository(rdb redis.UniversalClient, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(token string) string {
	return r.prefix + token
}

func (r *RedisRepository) Create(ctx context.Context, token string) (*models.SessionToken, error) {
	st := &models.SessionToken{
		ID:        uuid.NewString(),
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	err := r.rdb.HSet(ctx, r.key(token),
		fieldID, st.ID,
		fieldCreatedAt, st.CreatedAt.Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	return st, nil
}

func (r *RedisRepository) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	fields, err := r.rdb.HGetAll(ctx, r.key(token)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(fields) == 0 {
		return nil, common.ErrorNotFound
	}

	st := &models.SessionToken{ID: fields[fieldID], Token: token}
	if ts, ok := fields[fieldCreatedAt]; ok {
		st.CreatedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("redis error: bad created_at: %w", err)
		}
	}
	return st, nil
}

func (r *RedisRepository) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.rdb.Del(ctx, r.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("redis error: %w", err)
	}
	return n > 0, nil
}
