package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpggio/worktracker/internal/mcp"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the tracker over MCP on stdin/stdout",
		Long: `Runs a Model Context Protocol server on stdin/stdout exposing the
record_event, switch_project, list_events, list_projects and summary tools.

Logs go to stderr or WORK_TRACKER_LOG_PATH so stdout stays clean for JSON-RPC.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := NewAppContext(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			server := mcp.NewServer(mcp.Config{
				Tracker: app.Tracker,
				Logger:  app.Logger,
				Version: version,
			})

			app.Logger.Info("starting stdio transport")
			if err := mcp.Run(ctx, server); err != nil && ctx.Err() == nil {
				return err
			}
			app.Logger.Info("shutting down")
			return nil
		},
	}
}
