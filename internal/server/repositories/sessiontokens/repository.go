// Package sessiontokens declares the server-side store of issued session
// tokens. A token is only honoured while its record exists here.
package sessiontokens

import (
	"context"

	"github.com/dmitrijs2005/useraccounts/internal/server/models"
)

// Repository stores session tokens keyed by the token string itself.
// No uniqueness is enforced: signed tokens carry a random jti.
type Repository interface {
	// Create records token as an active session.
	Create(ctx context.Context, token string) (*models.SessionToken, error)

	// Find returns the record for token or common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.SessionToken, error)

	// Delete removes token and reports whether a record existed.
	Delete(ctx context.Context, token string) (bool, error)
}
