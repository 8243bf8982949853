package repomanager

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/useraccounts/internal/server/migrations"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/useraccounts/internal/server/repositories/sessiontokens"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
)

// PostgresRepositoryManager keeps accounts in PostgreSQL. Session tokens go
// to Redis when a client is supplied and to PostgreSQL otherwise.
type PostgresRepositoryManager struct {
	db            *sql.DB
	rdb           redis.UniversalClient
	accounts      accounts.Repository
	sessionTokens sessiontokens.Repository
}

// NewPostgresRepositoryManager builds the manager. rdb may be nil.
func NewPostgresRepositoryManager(db *sql.DB, rdb redis.UniversalClient) *PostgresRepositoryManager {
	m := &PostgresRepositoryManager{
		db:       db,
		rdb:      rdb,
		accounts: accounts.NewPostgresRepository(db),
	}
	if rdb != nil {
		m.sessionTokens = sessiontokens.NewRedisRepository(rdb, "")
	} else {
		m.sessionTokens = sessiontokens.NewPostgresRepository(db)
	}
	return m
}

func (m *PostgresRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func (m *PostgresRepositoryManager) SessionTokens() sessiontokens.Repository {
	return m.sessionTokens
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations with goose.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

// Close releases the Redis client (if any) and the database pool.
func (m *PostgresRepositoryManager) Close() error {
	var errs []error
	if m.rdb != nil {
		errs = append(errs, m.rdb.Close())
	}
	errs = append(errs, m.db.Close())
	return errors.Join(errs...)
}
