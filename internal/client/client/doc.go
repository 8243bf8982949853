// Package client contains client-side building blocks for the CLI.
//
// It provides the Client interface for the user-accounts HTTP API, an
// implementation (HTTPClient) that carries the AuthToken cookie, and
// bootstrap helpers for the local SQLite database (InitDatabase,
// RunMigrations).
//
// Server answers are mapped to sentinel errors: ErrUnavailable when the
// server cannot be reached, ErrNoSession for 404, ErrUnauthorized for a
// rejected session token, ErrRejected for other 400s and ErrServer for 5xx.
package client
