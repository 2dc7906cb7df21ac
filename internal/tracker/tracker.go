// Package tracker interprets work-tracking commands against the event log
// and the project registry.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/domain/project"
)

// EventService defines event log operations needed by the tracker.
type EventService interface {
	Append(ctx context.Context, typ event.Type, message string, projectID int64) (*event.Event, error)
	ListForProject(ctx context.Context, projectID int64) ([]event.Event, error)
	HasOpenStart(ctx context.Context, projectID int64) (bool, error)
}

// ProjectService defines project registry operations needed by the tracker.
type ProjectService interface {
	GetCurrent(ctx context.Context) project.Project
	SwitchTo(ctx context.Context, name string) (*project.SwitchResult, error)
	Ensure(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
}

// Tracker executes commands.
type Tracker struct {
	events   EventService
	projects ProjectService
	logger   *slog.Logger
	now      func() time.Time
}

// New creates a Tracker.
func New(events EventService, projects ProjectService, logger *slog.Logger) *Tracker {
	return &Tracker{
		events:   events,
		projects: projects,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock replaces the time source used to evaluate open sessions.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Execute runs the action the command resolves to.
func (t *Tracker) Execute(ctx context.Context, cmd Command) (*Result, error) {
	action := cmd.Action()
	if t.logger != nil {
		t.logger.Debug("executing command", "action", action)
	}

	switch action {
	case ActionStop:
		return t.stop(ctx, cmd)
	case ActionSwitch:
		return t.switchProject(ctx, cmd.SwitchTo)
	case ActionListEvents:
		return t.listEvents(ctx, cmd)
	case ActionListProjects:
		return t.listProjects(ctx)
	case ActionSummary:
		return t.summary(ctx)
	default:
		return t.record(ctx, cmd)
	}
}

// target resolves the project a record or list applies to.
func (t *Tracker) target(ctx context.Context, cmd Command) (project.Project, error) {
	if cmd.Project == "" {
		return t.projects.GetCurrent(ctx), nil
	}
	proj, err := t.projects.Ensure(ctx, cmd.Project)
	if err != nil {
		return project.Project{}, err
	}
	return *proj, nil
}

func (t *Tracker) record(ctx context.Context, cmd Command) (*Result, error) {
	proj, err := t.target(ctx, cmd)
	if err != nil {
		return nil, err
	}

	open, err := t.events.HasOpenStart(ctx, proj.ID)
	if err != nil {
		return nil, err
	}

	typ := event.TypeStart
	if open {
		typ = event.TypeMarker
	}

	evt, err := t.events.Append(ctx, typ, cmd.Message, proj.ID)
	if err != nil {
		return nil, err
	}
	return &Result{Action: ActionRecord, Project: proj, Now: t.now().Unix(), Event: evt}, nil
}

func (t *Tracker) stop(ctx context.Context, cmd Command) (*Result, error) {
	proj, err := t.target(ctx, cmd)
	if err != nil {
		return nil, err
	}

	evt, err := t.events.Append(ctx, event.TypeStop, cmd.Message, proj.ID)
	if err != nil {
		return nil, err
	}
	return &Result{Action: ActionStop, Project: proj, Now: t.now().Unix(), Event: evt}, nil
}

func (t *Tracker) switchProject(ctx context.Context, name string) (*Result, error) {
	switched, err := t.projects.SwitchTo(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Result{Action: ActionSwitch, Project: switched.Project, Now: t.now().Unix(), Switch: switched}, nil
}

func (t *Tracker) listEvents(ctx context.Context, cmd Command) (*Result, error) {
	proj, err := t.target(ctx, cmd)
	if err != nil {
		return nil, err
	}

	now := t.now()
	events, err := t.events.ListForProject(ctx, proj.ID)
	if err != nil {
		return nil, err
	}

	total := event.TotalSeconds(events, now)
	return &Result{
		Action:  ActionListEvents,
		Project: proj,
		Now:     now.Unix(),
		Events: &EventsReport{
			Events:       events,
			Session:      event.DeriveSession(events),
			TotalSeconds: total,
			Total:        event.FormatSeconds(total),
		},
	}, nil
}

func (t *Tracker) listProjects(ctx context.Context) (*Result, error) {
	current := t.projects.GetCurrent(ctx)
	projects, err := t.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ProjectRow, 0, len(projects))
	for _, proj := range projects {
		running, err := t.events.HasOpenStart(ctx, proj.ID)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", proj.Name, err)
		}
		rows = append(rows, ProjectRow{
			ID:      proj.ID,
			Name:    proj.Name,
			Current: proj.ID == current.ID,
			Running: running,
		})
	}
	return &Result{Action: ActionListProjects, Project: current, Now: t.now().Unix(), Projects: rows}, nil
}

func (t *Tracker) summary(ctx context.Context) (*Result, error) {
	current := t.projects.GetCurrent(ctx)
	projects, err := t.projects.List(ctx)
	if err != nil {
		return nil, err
	}

	now := t.now()
	rows := make([]ProjectRow, 0, len(projects))
	for _, proj := range projects {
		events, err := t.events.ListForProject(ctx, proj.ID)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", proj.Name, err)
		}
		total := event.TotalSeconds(events, now)
		rows = append(rows, ProjectRow{
			ID:           proj.ID,
			Name:         proj.Name,
			Current:      proj.ID == current.ID,
			Running:      event.DeriveSession(events).IsRunning(),
			TotalSeconds: total,
			Total:        event.FormatSeconds(total),
		})
	}
	return &Result{Action: ActionSummary, Project: current, Now: now.Unix(), Projects: rows}, nil
}
