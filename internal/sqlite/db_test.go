package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates a migrated SQLite database in a temporary directory
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	for _, table := range []string{"events", "projects", "schema_migrations"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestOpenIsIdempotent verifies reopening an existing file keeps its data
func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tracker.db")
	ctx := context.Background()

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO events (message, type, time, project_id) VALUES ('x', 'start', 1, 1)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count))
	require.Equal(t, 1, count)
}

// TestEventTypeConstraint verifies the type column rejects unknown values
func TestEventTypeConstraint(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO events (message, type, time) VALUES ('', 'pause', 1)`)
	require.Error(t, err, "should fail with invalid type")

	_, err = db.Exec(`INSERT INTO events (message, type, time) VALUES ('', 'marker', 1)`)
	require.NoError(t, err)

	var projectID int64
	require.NoError(t, db.QueryRow(`SELECT project_id FROM events`).Scan(&projectID))
	require.Equal(t, int64(1), projectID, "project_id defaults to 1")
}

// TestSingleDefaultIndex verifies the schema refuses a second current project
func TestSingleDefaultIndex(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (name, is_default) VALUES ('a', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO projects (name, is_default) VALUES ('b', 1)`)
	require.Error(t, err)
	require.True(t, isUniqueViolation(err))

	_, err = db.Exec(`INSERT INTO projects (name, is_default) VALUES ('c', 0)`)
	require.NoError(t, err)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

// TestOpenUpgradesSingleProjectLog verifies a log written before projects
// existed migrates cleanly and keeps its rows in project 1
func TestOpenUpgradesSingleProjectLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "work.db")
	ctx := context.Background()

	raw, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = raw.Exec(`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		message TEXT NOT NULL,
		type TEXT NOT NULL,
		time INTEGER NOT NULL
	)`)
	require.NoError(t, err)
	_, err = raw.Exec(`INSERT INTO events (message, type, time) VALUES
		('fix bug', 'start', 100),
		('', 'stop', 400),
		('note', 'marker', 500)`)
	require.NoError(t, err)
	require.NoError(t, raw.Close())

	db, err := Open(path)
	require.NoError(t, err)

	repo := NewEventRepository(db)
	events, err := repo.ListForProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, int64(1), events[0].ID)
	require.Equal(t, "fix bug", events[0].Message)
	require.Equal(t, event.TypeStart, events[0].Type)
	require.Equal(t, int64(100), events[0].Time)
	require.Equal(t, event.TypeMarker, events[2].Type)

	evt := &event.Event{Type: event.TypeStart, Time: 600, ProjectID: 1}
	require.NoError(t, repo.Append(ctx, evt))
	require.Equal(t, int64(4), evt.ID)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count))
	require.Equal(t, 0, count, "the registry seeds the default project, not the migration")
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err, "reopening must not find a dirty schema")
	defer db.Close()

	var version int
	var dirty bool
	require.NoError(t, db.QueryRow(`SELECT version, dirty FROM schema_migrations`).Scan(&version, &dirty))
	require.Equal(t, 2, version)
	require.False(t, dirty)

	events, err = NewEventRepository(db).ListForProject(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 4)
}

// TestOpenPathWithURICharacters verifies ? and # stay part of the file name
func TestOpenPathWithURICharacters(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a?b#c%20d")
	path := filepath.Join(dir, "tracker.db")

	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	var timeout int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	require.Equal(t, busyTimeoutMillis, timeout, "pragmas must still apply")

	_, err = os.Stat(path)
	require.NoError(t, err, "database must be created at the literal path")
}
