package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_FileSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.db")

	db, err := NewDB(path)
	require.NoError(t, err)
	assert.Equal(t, path, db.Path())

	_, err = RunMigrations(db.Writer)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ro, err := NewReadOnlyDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ro.Close() })

	var n int
	require.NoError(t, ro.Reader.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table'").Scan(&n))
	assert.Positive(t, n)

	_, err = ro.Writer.Exec("CREATE TABLE scratch (id INTEGER)")
	assert.Error(t, err, "read-only snapshot must reject writes")
}

func TestNewReadOnlyDB_MissingFile(t *testing.T) {
	_, err := NewReadOnlyDB(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
