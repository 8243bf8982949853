package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/useraccounts/internal/client/client"
	"github.com/dmitrijs2005/useraccounts/internal/client/config"
	"github.com/dmitrijs2005/useraccounts/internal/client/models"
	"github.com/dmitrijs2005/useraccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/useraccounts/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	db          *sql.DB
	account     *models.Account
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerAddr, c.RequestTimeout)
	as := services.NewAuthService(apiClient, metadata.NewSQLiteRepository(db))

	return &App{config: c, authService: as, db: db, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.authService.HasSession()
}

func (a *App) getStatus() string {
	if a.account != nil {
		return "(" + a.account.Email + ")"
	}
	if a.isLoggedIn() {
		return "(session)"
	}
	return ""
}

// Run restores a saved session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	if err := a.authService.Restore(ctx); err != nil {
		log.Printf("could not restore session: %s", err.Error())
	}

	printlnFn("Welcome to the user accounts CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		_ = a.WhoAmI(ctx)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}
