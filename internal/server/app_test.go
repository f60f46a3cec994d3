package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDriver = config.DriverMemory
	c.Port = 0
	c.BcryptCost = 4
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	assert.NotNil(t, app.accountService)
	assert.NotNil(t, app.taskService)
	assert.NotNil(t, app.gate)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	c := memoryConfig()
	c.DatabaseDriver = "cassandra"

	_, err := NewApp(context.Background(), c)
	assert.Error(t, err)
}

func TestRun_ReturnsWhenContextEnds(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after context cancel")
	}
}
