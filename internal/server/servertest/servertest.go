// Package servertest starts a complete taskkeeper server backed by the
// in-memory store, for tests of API consumers.
package servertest

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// NewServer returns a running server that is closed when the test ends.
func NewServer(t testing.TB) *httptest.Server {
	t.Helper()

	gin.SetMode(gin.TestMode)

	m := repomanager.NewMemoryRepositoryManager()
	tokens := auth.NewTokenService([]byte("servertest"), 24*time.Hour)
	accounts := services.NewAccountService(m, auth.NewPasswordHasher(bcrypt.MinCost), tokens, logging.Nop())
	tasks := services.NewTaskService(m, logging.Nop())

	h := httpapi.NewHTTPServer("", time.Second, logging.Nop(), accounts, tasks, auth.NewGate(tokens))

	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)
	return srv
}
