// Package cli implements the interactive taskkeeper command-line client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/client/services"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService *services.AuthService
	taskService *services.TaskService
	session     *services.Session
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdin, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing session database: %w", err)
	}

	api := client.NewClient(c.ServerURL, c.RequestTimeout)
	as := services.NewAuthService(api, db)
	ts := services.NewTaskService(api, as)

	app := &App{
		config:      c,
		db:          db,
		authService: as,
		taskService: ts,
		reader:      bufio.NewReader(in),
		out:         out,
	}

	app.session, err = as.Current(ctx)
	if err != nil && !errors.Is(err, services.ErrNotLoggedIn) {
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.session.Email)
}

// Run checks that the server is reachable and then reads commands until EOF
// or "exit". The session database is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to taskkeeper (type 'help' for commands)")

	if err := a.authService.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "Warning: %s is not responding: %v\n", a.config.ServerURL, err)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
