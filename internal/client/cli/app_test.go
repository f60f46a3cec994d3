package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/servertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) {
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
}

func runApp(t *testing.T, cfg *config.Config, script ...string) string {
	t.Helper()
	var out bytes.Buffer
	app, err := newApp(context.Background(), cfg, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, err)
	app.Run(context.Background())
	return out.String()
}

func TestApp_EndToEnd(t *testing.T) {
	srv := servertest.NewServer(t)
	cfg := &config.Config{
		ServerURL:      srv.URL,
		SessionFile:    filepath.Join(t.TempDir(), "session.db"),
		RequestTimeout: time.Second,
	}

	stubPasswords(t, "pw1", "pw1")
	out := runApp(t, cfg,
		"list",
		"register", "alice", "alice@example.com",
		"login", "alice@example.com",
		"create", "Buy milk", "",
		"exit",
	)
	assert.NotContains(t, out, "is not responding")
	assert.Contains(t, out, "Error: not logged in")
	assert.Contains(t, out, "Logged in as alice@example.com")
	assert.Regexp(t, `Buy milk\s+Pending`, out)

	id := regexp.MustCompile(`(?m)^(\S+)\s+Buy milk`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	// the session survives a restart
	out = runApp(t, cfg,
		"update "+id[1], "Buy milk", "Done",
		"list",
		"whoami",
		"logout",
		"list",
	)
	assert.Contains(t, out, "tk (alice@example.com) >")
	assert.Regexp(t, `Buy milk\s+Done`, out)
	assert.Contains(t, out, "alice <alice@example.com>")
	assert.Contains(t, out, "1 task(s)")
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Error: not logged in")
}

func TestApp_ServerDown(t *testing.T) {
	cfg := &config.Config{
		ServerURL:      "http://127.0.0.1:1",
		SessionFile:    ":memory:",
		RequestTimeout: 200 * time.Millisecond,
	}

	out := runApp(t, cfg, "help")
	assert.Contains(t, out, "is not responding")
	assert.Contains(t, out, "Available commands: register, login, exit")
}
