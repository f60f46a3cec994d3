package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepositoryManager vends MongoDB-backed repositories. Standalone
// MongoDB servers have no multi-document transactions, so RunInTx is a
// best-effort sequence of single-document writes.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  *users.MongoRepository
	tasks  *tasks.MongoRepository
}

// NewMongoRepositoryManager binds repositories to db. client may be nil when
// the caller owns the connection.
func NewMongoRepositoryManager(client *mongo.Client, db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db),
		tasks:  tasks.NewMongoRepository(db),
	}
}

// ConnectMongo connects to uri, verifies the connection and selects database.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping error: %w", err)
	}
	return NewMongoRepositoryManager(client, client.Database(database)), nil
}

func (m *MongoRepositoryManager) Users() users.Repository { return m.users }

func (m *MongoRepositoryManager) Tasks() tasks.Repository { return m.tasks }

func (m *MongoRepositoryManager) RunInTx(ctx context.Context, fn TxFunc) error {
	return fn(ctx, m.users, m.tasks)
}

// RunMigrations creates the indexes the repositories rely on, including the
// unique email index.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return err
	}
	return m.tasks.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
