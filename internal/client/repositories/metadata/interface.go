// Package metadata persists small key/value settings of the CLI, such as the
// current session token, in the local SQLite database.
package metadata

import (
	"context"
)

// Repository is a string key/value store. Get returns common.ErrorNotFound
// for a missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
