package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imRanDan/chess-analytics-tool/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The handle is closed when the test finishes.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}
