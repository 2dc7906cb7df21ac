package mocks

import (
	"context"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/domain/project"
	"github.com/stretchr/testify/mock"
)

// EventRepository is a mock for event.Repository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Append(ctx context.Context, evt *event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *EventRepository) ListForProject(ctx context.Context, projectID int64) ([]event.Event, error) {
	args := m.Called(ctx, projectID)
	if events, ok := args.Get(0).([]event.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) HasOpenStart(ctx context.Context, projectID int64) (bool, error) {
	args := m.Called(ctx, projectID)
	return args.Bool(0), args.Error(1)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) EnsureDefault(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ProjectRepository) GetCurrent(ctx context.Context) (*project.Project, error) {
	args := m.Called(ctx)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Ensure(ctx context.Context, name string) (*project.Project, error) {
	args := m.Called(ctx, name)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) SwitchTo(ctx context.Context, name string) (*project.SwitchResult, error) {
	args := m.Called(ctx, name)
	if result, ok := args.Get(0).(*project.SwitchResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
