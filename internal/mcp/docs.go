package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `worktracker keeps an append-only log of work events (start, stop, marker) per project.

Core concepts:
- Project: a named bucket of events. Exactly one project is current; "default" exists from the start.
- Session: a start not yet followed by a stop. Recording while a session runs adds a marker.
- Durations are computed from the log on every read; nothing is cached.

Typical workflow:
1) record_event to start work (pass message for context).
2) record_event again to leave markers; record_event with stop=true to stop.
3) switch_project to move between projects; pass project to record_event to log against another project without switching.
4) list_events, list_projects and summary to report.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "worktracker://docs/events",
		Name:        "events",
		Title:       "Event semantics",
		Description: "How events reduce to worked time",
		Content: `# Event semantics

- start: opens a session at its time. A second start before a stop replaces the open start; the earlier interval is not counted.
- stop: closes the open session and adds its duration. A stop with no open session changes nothing.
- marker: a note inside a session. It never affects durations.

A session that is still open counts up to the time of the report.
Totals render as "{h}h {m}m {s}s" with unbounded hours.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
