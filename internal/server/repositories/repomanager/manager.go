// Package repomanager selects the storage backend and hands out repositories
// bound to it.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

// TxFunc receives repositories scoped to a single unit of work.
type TxFunc func(ctx context.Context, users users.Repository, tasks tasks.Repository) error

type RepositoryManager interface {
	// RunMigrations prepares the schema (tables, indexes, constraints).
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Tasks() tasks.Repository
	// RunInTx runs fn so that its writes commit or roll back together when the
	// backend supports transactions. Other backends run fn directly and a
	// failure midway leaves earlier writes in place.
	RunInTx(ctx context.Context, fn TxFunc) error
	Close(ctx context.Context) error
}

// Open connects to the backend named by cfg.DatabaseDriver and runs its
// migrations.
func Open(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch cfg.DatabaseDriver {
	case config.DriverMongo:
		m, err = ConnectMongo(ctx, cfg.DatabaseDSN, cfg.DatabaseName)
	case config.DriverPostgres:
		m, err = ConnectPostgres(ctx, cfg.DatabaseDSN)
	case config.DriverMemory:
		m = NewMemoryRepositoryManager()
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return m, nil
}
