package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Service handles event log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new event service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// WithClock replaces the time source used to stamp events.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Append records a new event for a project, stamped with the current time.
func (s *Service) Append(ctx context.Context, typ Type, message string, projectID int64) (*Event, error) {
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidType, typ)
	}

	evt := &Event{
		Message:   message,
		Type:      typ,
		Time:      s.now().Unix(),
		ProjectID: projectID,
	}
	if err := s.repo.Append(ctx, evt); err != nil {
		return nil, fmt.Errorf("appending %s event: %w", typ, err)
	}

	if s.logger != nil {
		s.logger.Debug("event appended", "id", evt.ID, "type", evt.Type, "project_id", projectID)
	}
	return evt, nil
}

// ListForProject returns a project's events in chronological order.
func (s *Service) ListForProject(ctx context.Context, projectID int64) ([]Event, error) {
	events, err := s.repo.ListForProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// HasOpenStart reports whether the project has a start not yet followed by a stop.
func (s *Service) HasOpenStart(ctx context.Context, projectID int64) (bool, error) {
	open, err := s.repo.HasOpenStart(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("checking open session: %w", err)
	}
	return open, nil
}
