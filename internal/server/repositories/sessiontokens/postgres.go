package sessiontokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/useraccounts/internal/common"
	"github.com/dmitrijs2005/useraccounts/internal/dbx"
	"github.com/dmitrijs2005/useraccounts/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository keeps session tokens in the session_tokens table.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, token string) (*models.SessionToken, error) {
	query := `
		INSERT INTO session_tokens (id, token)
		VALUES ($1, $2)
		RETURNING created_at
	`
	st := &models.SessionToken{ID: uuid.NewString(), Token: token}
	if err := r.db.QueryRowContext(ctx, query, st.ID, token).Scan(&st.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return st, nil
}

func (r *PostgresRepository) Find(ctx context.Context, token string) (*models.SessionToken, error) {
	query := `
		SELECT id, token, created_at
		FROM session_tokens
		WHERE token = $1
		LIMIT 1
	`
	st := &models.SessionToken{}
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&st.ID, &st.Token, &st.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return st, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) (bool, error) {
	query := `
		DELETE FROM session_tokens
		WHERE token = $1
	`
	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
