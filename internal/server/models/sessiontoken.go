package models

import "time"

// SessionToken is the server-side record of an issued session token.
// Deleting it revokes the token regardless of its signature.
type SessionToken struct {
	ID        string
	Token     string
	CreatedAt time.Time
}
