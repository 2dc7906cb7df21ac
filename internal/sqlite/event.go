package sqlite

import (
	"context"

	"github.com/rpggio/worktracker/internal/domain/event"
)

// EventRepository implements event.Repository for SQLite
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Append inserts a new event and sets its ID
func (r *EventRepository) Append(ctx context.Context, evt *event.Event) error {
	query := `
		INSERT INTO events (message, type, time, project_id)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		evt.Message,
		string(evt.Type),
		evt.Time,
		evt.ProjectID,
	)
	if err != nil {
		return storageError("append event", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageError("append event", err)
	}
	evt.ID = id

	return nil
}

// ListForProject returns a project's events in append order
func (r *EventRepository) ListForProject(ctx context.Context, projectID int64) ([]event.Event, error) {
	query := `
		SELECT id, message, type, time, project_id
		FROM events
		WHERE project_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, storageError("list events", err)
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		var evt event.Event
		var typ string
		if err := rows.Scan(
			&evt.ID,
			&evt.Message,
			&typ,
			&evt.Time,
			&evt.ProjectID,
		); err != nil {
			return nil, storageError("scan event", err)
		}
		evt.Type = event.Type(typ)
		events = append(events, evt)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("list events", err)
	}

	return events, nil
}

// HasOpenStart reports whether the project's latest start is newer than its
// latest stop
func (r *EventRepository) HasOpenStart(ctx context.Context, projectID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE project_id = ?
			  AND type = 'start'
			  AND id > COALESCE(
				(SELECT MAX(id) FROM events WHERE project_id = ? AND type = 'stop'), 0
			  )
		)
	`

	var open bool
	if err := r.db.QueryRowContext(ctx, query, projectID, projectID).Scan(&open); err != nil {
		return false, storageError("check open start", err)
	}
	return open, nil
}
