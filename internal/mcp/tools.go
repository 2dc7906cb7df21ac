package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/worktracker/internal/tracker"
)

// RecordEventInput is the input for record_event.
type RecordEventInput struct {
	Message string `json:"message,omitempty" jsonschema:"free-text note stored with the event"`
	Stop    bool   `json:"stop,omitempty" jsonschema:"append a stop event instead of a start or marker"`
	Project string `json:"project,omitempty" jsonschema:"record against this project without switching to it"`
}

// SwitchProjectInput is the input for switch_project.
type SwitchProjectInput struct {
	Name string `json:"name" jsonschema:"project to make current; created when missing"`
}

// ListEventsInput is the input for list_events.
type ListEventsInput struct {
	Project string `json:"project,omitempty" jsonschema:"project to list; defaults to the current project"`
}

// NoInput is the input for tools that take no arguments.
type NoInput struct{}

func registerTools(server *sdkmcp.Server, trk Executor) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_event",
		Description: "Start work, or add a marker when a session is already running. With stop=true, stop the running session.",
	}, commandHandler(trk, func(in RecordEventInput) tracker.Command {
		return tracker.Command{Message: in.Message, Stop: in.Stop, Project: in.Project}
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "switch_project",
		Description: "Make a project current, creating it if needed. Switching to the current project is a no-op.",
	}, commandHandler(trk, func(in SwitchProjectInput) tracker.Command {
		return tracker.Command{Switch: true, SwitchTo: in.Name}
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_events",
		Description: "List a project's events with its total worked time and running session.",
	}, commandHandler(trk, func(in ListEventsInput) tracker.Command {
		return tracker.Command{ListEvents: true, Project: in.Project}
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects, marking the current one and those with a running session.",
	}, commandHandler(trk, func(NoInput) tracker.Command {
		return tracker.Command{ListProjects: true}
	}))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "summary",
		Description: "Total worked time per project.",
	}, commandHandler(trk, func(NoInput) tracker.Command {
		return tracker.Command{Summary: true}
	}))
}

// commandHandler adapts a tool input into a tracker command. The tracker
// result is returned as structured content.
func commandHandler[In any](trk Executor, build func(In) tracker.Command) sdkmcp.ToolHandlerFor[In, tracker.Result] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input In) (*sdkmcp.CallToolResult, tracker.Result, error) {
		result, err := trk.Execute(ctx, build(input))
		if err != nil {
			return nil, tracker.Result{}, MapError(err)
		}
		return nil, *result, nil
	}
}
