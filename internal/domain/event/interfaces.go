package event

import "context"

// Repository provides persistence for the event log.
type Repository interface {
	Append(ctx context.Context, evt *Event) error
	ListForProject(ctx context.Context, projectID int64) ([]Event, error)
	HasOpenStart(ctx context.Context, projectID int64) (bool, error)
}
