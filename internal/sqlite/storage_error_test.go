package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close()
	})

	return &DB{conn}, mock
}

func requireStorageError(t *testing.T, err error, op string, cause error) {
	t.Helper()

	var storageErr *repository.StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, op, storageErr.Op)
	require.ErrorIs(t, err, cause)
}

func TestEventRepository_StorageErrors(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk I/O error")

	db, mock := newMockDB(t)
	repo := NewEventRepository(db)

	mock.ExpectExec("INSERT INTO events").WillReturnError(diskErr)
	err := repo.Append(ctx, &event.Event{Type: event.TypeStart, Time: 1, ProjectID: 1})
	requireStorageError(t, err, "append event", diskErr)

	mock.ExpectQuery("SELECT id, message, type, time, project_id").WithArgs(int64(1)).WillReturnError(diskErr)
	_, err = repo.ListForProject(ctx, 1)
	requireStorageError(t, err, "list events", diskErr)

	mock.ExpectQuery("SELECT EXISTS").WithArgs(int64(1), int64(1)).WillReturnError(diskErr)
	_, err = repo.HasOpenStart(ctx, 1)
	requireStorageError(t, err, "check open start", diskErr)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_SwitchToBeginFails(t *testing.T) {
	lockedErr := errors.New("database is locked")
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin().WillReturnError(lockedErr)
	_, err := repo.SwitchTo(context.Background(), "api")
	requireStorageError(t, err, "begin switch", lockedErr)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_SwitchToRollsBackOnFailure(t *testing.T) {
	diskErr := errors.New("disk I/O error")
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, name, is_default").WithArgs("api").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_default"}).AddRow(int64(2), "api", false))
	mock.ExpectExec("UPDATE projects SET is_default = 0").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE projects SET is_default = 1").WithArgs(int64(2)).WillReturnError(diskErr)
	mock.ExpectRollback()

	_, err := repo.SwitchTo(context.Background(), "api")
	requireStorageError(t, err, "set current project", diskErr)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_SwitchToCommitFails(t *testing.T) {
	diskErr := errors.New("disk I/O error")
	db, mock := newMockDB(t)
	repo := NewProjectRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, name, is_default").WithArgs("api").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "is_default"}).AddRow(int64(2), "api", false))
	mock.ExpectExec("UPDATE projects SET is_default = 0").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE projects SET is_default = 1").WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(diskErr)

	_, err := repo.SwitchTo(context.Background(), "api")
	requireStorageError(t, err, "commit switch", diskErr)

	require.NoError(t, mock.ExpectationsWereMet())
}
