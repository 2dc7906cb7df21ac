package sqlite

import (
	"context"
	"testing"

	"github.com/rpggio/worktracker/internal/domain/project"
	"github.com/rpggio/worktracker/internal/repository"
	"github.com/stretchr/testify/require"
)

func countDefaults(t *testing.T, db *DB) int {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM projects WHERE is_default = 1`).Scan(&count))
	return count
}

func TestProjectRepository_EnsureDefault(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	_, err := repo.GetCurrent(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.EnsureDefault(ctx))
	require.NoError(t, repo.EnsureDefault(ctx))

	current, err := repo.GetCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, project.Project{ID: 1, Name: project.DefaultName, IsDefault: true}, *current)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
}

func TestProjectRepository_EnsureDefaultSkipsNonEmptyRegistry(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	_, err := repo.Ensure(ctx, "api")
	require.NoError(t, err)
	require.NoError(t, repo.EnsureDefault(ctx))

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "api", projects[0].Name)
}

func TestProjectRepository_SwitchToCreatesAndSelects(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)
	require.NoError(t, repo.EnsureDefault(ctx))

	result, err := repo.SwitchTo(ctx, "api")
	require.NoError(t, err)
	require.True(t, result.Created)
	require.False(t, result.AlreadyCurrent)
	require.Equal(t, "api", result.Project.Name)
	require.True(t, result.Project.IsDefault)

	current, err := repo.GetCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, result.Project, *current)
	require.Equal(t, 1, countDefaults(t, db))

	back, err := repo.SwitchTo(ctx, project.DefaultName)
	require.NoError(t, err)
	require.False(t, back.Created)
	require.Equal(t, int64(1), back.Project.ID)
	require.Equal(t, 1, countDefaults(t, db))
}

func TestProjectRepository_SwitchToIsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)
	require.NoError(t, repo.EnsureDefault(ctx))

	first, err := repo.SwitchTo(ctx, "api")
	require.NoError(t, err)
	second, err := repo.SwitchTo(ctx, "api")
	require.NoError(t, err)

	require.False(t, second.Created)
	require.True(t, second.AlreadyCurrent)
	require.Equal(t, first.Project.ID, second.Project.ID)

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, 1, countDefaults(t, db))
}

func TestProjectRepository_EnsureDoesNotSwitch(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)
	require.NoError(t, repo.EnsureDefault(ctx))

	proj, err := repo.Ensure(ctx, "side")
	require.NoError(t, err)
	require.False(t, proj.IsDefault)

	again, err := repo.Ensure(ctx, "side")
	require.NoError(t, err)
	require.Equal(t, proj.ID, again.ID)

	current, err := repo.GetCurrent(ctx)
	require.NoError(t, err)
	require.Equal(t, project.DefaultName, current.Name)
}

func TestProjectRepository_ListOrder(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)
	require.NoError(t, repo.EnsureDefault(ctx))

	for _, name := range []string{"b", "a", "c"} {
		_, err := repo.Ensure(ctx, name)
		require.NoError(t, err)
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{project.DefaultName, "b", "a", "c"}, names)
}
