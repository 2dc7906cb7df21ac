package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpggio/worktracker/internal/config"
	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/domain/project"
	"github.com/rpggio/worktracker/internal/logging"
	"github.com/rpggio/worktracker/internal/sqlite"
	"github.com/rpggio/worktracker/internal/tracker"
)

// AppContext holds the shared dependencies for one CLI invocation.
type AppContext struct {
	Config  config.Config
	Logger  *slog.Logger
	DB      *sqlite.DB
	Tracker *tracker.Tracker

	closeLog func() error
}

// NewAppContext loads configuration, opens the database and wires the
// tracker. stderr receives logs when no log file is configured.
func NewAppContext(ctx context.Context, stderr io.Writer) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("database %s: %w", cfg.DBPath, err)
	}

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), logger)
	if err := projectSvc.Init(ctx); err != nil {
		_ = db.Close()
		_ = closeLog()
		return nil, err
	}
	eventSvc := event.NewService(sqlite.NewEventRepository(db), logger)

	logger.Debug("database ready", "path", cfg.DBPath)

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Tracker:  tracker.New(eventSvc, projectSvc, logger),
		closeLog: closeLog,
	}, nil
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
	}
	return errors.Join(errs...)
}
