package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Service handles project registry operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Init creates the default project when the registry is empty.
func (s *Service) Init(ctx context.Context) error {
	if err := s.repo.EnsureDefault(ctx); err != nil {
		return fmt.Errorf("initializing projects: %w", err)
	}
	return nil
}

// GetCurrent returns the current project. It never fails: an empty or
// unreadable registry yields Fallback.
func (s *Service) GetCurrent(ctx context.Context) Project {
	proj, err := s.repo.GetCurrent(ctx)
	if err != nil || proj == nil {
		if s.logger != nil {
			s.logger.Warn("no current project, using fallback", "error", err)
		}
		return Fallback()
	}
	return *proj
}

// SwitchTo makes name the current project, creating it if needed.
func (s *Service) SwitchTo(ctx context.Context, name string) (*SwitchResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	result, err := s.repo.SwitchTo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("switching project: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("project switched", "id", result.Project.ID, "name", result.Project.Name, "created", result.Created)
	}
	return result, nil
}

// Ensure returns the named project, creating it without making it current.
func (s *Service) Ensure(ctx context.Context, name string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	proj, err := s.repo.Ensure(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolving project %q: %w", name, err)
	}
	return proj, nil
}

// List returns all projects ordered by id.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}
