// Package cli provides the interactive command-line client for the
// user-accounts server.
//
// On start the saved session token (if any) is restored from the local
// database, then a REPL accepts:
//
//	register   create an account and start a session
//	login      start a session
//	whoami     re-authenticate with the saved session
//	logout     end the session
//	help       list commands
//	exit|quit  leave
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
