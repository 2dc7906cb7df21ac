package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rpggio/worktracker/internal/domain/project"
	"github.com/rpggio/worktracker/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EnsureDefault creates the default project, flagged current, when the
// registry is empty
func (r *ProjectRepository) EnsureDefault(ctx context.Context) error {
	query := `
		INSERT INTO projects (name, is_default)
		SELECT ?, 1
		WHERE NOT EXISTS (SELECT 1 FROM projects)
	`

	if _, err := r.db.ExecContext(ctx, query, project.DefaultName); err != nil {
		return storageError("ensure default project", err)
	}
	return nil
}

// GetCurrent retrieves the project flagged as default
func (r *ProjectRepository) GetCurrent(ctx context.Context) (*project.Project, error) {
	query := `
		SELECT id, name, is_default
		FROM projects
		WHERE is_default = 1
		ORDER BY id ASC
		LIMIT 1
	`

	proj, err := scanProject(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get current project", err)
	}
	return proj, nil
}

// Ensure returns the named project, inserting it as non-default if missing
func (r *ProjectRepository) Ensure(ctx context.Context, name string) (*project.Project, error) {
	insert := `INSERT INTO projects (name, is_default) VALUES (?, 0) ON CONFLICT(name) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insert, name); err != nil {
		return nil, storageError("ensure project", err)
	}

	proj, err := findByName(ctx, r.db, name)
	if err != nil {
		return nil, storageError("ensure project", err)
	}
	return proj, nil
}

// SwitchTo makes the named project current, creating it if needed. The
// lookup, insert, clear and set run in a single transaction.
func (r *ProjectRepository) SwitchTo(ctx context.Context, name string) (*project.SwitchResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageError("begin switch", err)
	}
	defer tx.Rollback()

	result := &project.SwitchResult{}

	proj, err := findByName(ctx, tx, name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx, `INSERT INTO projects (name, is_default) VALUES (?, 0)`, name)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, storageError("create project", repository.ErrConflict)
			}
			return nil, storageError("create project", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, storageError("create project", err)
		}
		proj = &project.Project{ID: id, Name: name}
		result.Created = true
	case err != nil:
		return nil, storageError("find project", err)
	}

	if proj.IsDefault {
		result.AlreadyCurrent = true
	} else {
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET is_default = 0 WHERE is_default = 1`); err != nil {
			return nil, storageError("clear current project", err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET is_default = 1 WHERE id = ?`, proj.ID); err != nil {
			return nil, storageError("set current project", err)
		}
		proj.IsDefault = true
	}

	if err := tx.Commit(); err != nil {
		return nil, storageError("commit switch", err)
	}

	result.Project = *proj
	return result, nil
}

// List returns all projects ordered by id
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := `
		SELECT id, name, is_default
		FROM projects
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageError("list projects", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.IsDefault); err != nil {
			return nil, storageError("scan project", err)
		}
		projects = append(projects, proj)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list projects", err)
	}

	return projects, nil
}

func findByName(ctx context.Context, q queryer, name string) (*project.Project, error) {
	query := `
		SELECT id, name, is_default
		FROM projects
		WHERE name = ?
	`
	return scanProject(q.QueryRowContext(ctx, query, name))
}

func scanProject(row *sql.Row) (*project.Project, error) {
	var proj project.Project
	if err := row.Scan(&proj.ID, &proj.Name, &proj.IsDefault); err != nil {
		return nil, err
	}
	return &proj, nil
}
