package project

import "context"

// Repository provides persistence for the project registry.
type Repository interface {
	EnsureDefault(ctx context.Context) error
	GetCurrent(ctx context.Context) (*Project, error)
	Ensure(ctx context.Context, name string) (*Project, error)
	SwitchTo(ctx context.Context, name string) (*SwitchResult, error)
	List(ctx context.Context) ([]Project, error)
}
