package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"recomptracker/internal/domain"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh database in a temp dir with the schema
// applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, EnsureSchema(db))
	return db
}

// createTestUser registers a user row directly and returns its id.
func createTestUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()

	repo := NewUserRepository(db)
	id, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: "x",
	})
	require.NoError(t, err)
	return id
}
