package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpggio/worktracker/internal/config"
	"github.com/rpggio/worktracker/internal/tracker"
	"github.com/rpggio/worktracker/internal/ui"
)

var version = "dev"

type rootOptions struct {
	message string
	stop    bool
	project string
	json    bool
}

// NewRootCmd builds the worktracker command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "worktracker",
		Short: "Track time spent working, per project",
		Long: `worktracker records start, stop and marker events in a local SQLite
database and reports how long you worked.

Run it with no arguments to start work, or to leave a marker when a session
is already running. Use -s to stop.

The database location is read from WORK_TRACKER_DB_PATH.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommand(cmd, opts, tracker.Command{
				Message: opts.message,
				Stop:    opts.stop,
				Project: opts.project,
			})
		},
	}

	rootCmd.Flags().StringVarP(&opts.message, "message", "m", "", "Message for the event")
	rootCmd.Flags().BoolVarP(&opts.stop, "stop", "s", false, "Create a stop event")
	addProjectFlag(rootCmd, opts)
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(
		newListCmd(opts),
		newProjectsCmd(opts),
		newSummaryCmd(opts),
		newProjectCmd(opts),
		newMCPCmd(),
	)
	return rootCmd
}

// addProjectFlag registers -p on the commands that act on a single project.
func addProjectFlag(cmd *cobra.Command, opts *rootOptions) {
	cmd.Flags().StringVarP(&opts.project, "project", "p", "", "Use this project instead of the current one, without switching")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	if config.IsMissingDBPath(err) {
		fmt.Fprintf(w, "%s environment variable not set.\n", config.DBPathVar)
		fmt.Fprintln(w, "Please add it to your shell profile (e.g. ~/.zshrc) and reload.")
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// runCommand opens the app, executes one tracker command and prints its
// result.
func runCommand(cmd *cobra.Command, opts *rootOptions, tcmd tracker.Command) error {
	app, err := NewAppContext(cmd.Context(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := app.Tracker.Execute(cmd.Context(), tcmd)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), app.Config.Display, res, opts.json)
}

func writeResult(out io.Writer, display config.DisplayConfig, res *tracker.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	styles := ui.NewStyles(ui.ShouldUseColor(display.Color, out))
	return ui.NewRenderer(out, styles, display.TimeFormat).Render(res)
}
