package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "abc"))

	v, err := r.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
}

func TestGet_Absent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyToken, "t"))
	require.NoError(t, r.Set(ctx, KeyEmail, "e"))
	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Clear(ctx))

	for _, k := range []string{KeyToken, KeyEmail} {
		v, err := r.Get(ctx, k)
		require.NoError(t, err)
		assert.Empty(t, v)
	}
}

func TestErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	ctx := context.Background()
	_, err := r.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get session[k]")
	assert.ErrorContains(t, r.Set(ctx, "k", "v"), "failed to set session[k]")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear session")
}
