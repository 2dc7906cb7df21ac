package ui

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/tracker"
)

// Renderer prints tracker results as human-readable text.
type Renderer struct {
	out        io.Writer
	styles     Styles
	timeFormat string
}

// NewRenderer creates a Renderer. timeFormat is a Go reference-time layout.
func NewRenderer(out io.Writer, styles Styles, timeFormat string) *Renderer {
	return &Renderer{out: out, styles: styles, timeFormat: timeFormat}
}

// Render prints the confirmation line or report for a result.
func (r *Renderer) Render(res *tracker.Result) error {
	switch res.Action {
	case tracker.ActionRecord, tracker.ActionStop:
		return r.confirmation(res)
	case tracker.ActionSwitch:
		return r.switched(res)
	case tracker.ActionListEvents:
		return r.events(res)
	case tracker.ActionListProjects:
		return r.projects(res, false)
	case tracker.ActionSummary:
		return r.projects(res, true)
	default:
		return fmt.Errorf("unknown action %q", res.Action)
	}
}

func (r *Renderer) confirmation(res *tracker.Result) error {
	var verb string
	switch res.Event.Type {
	case event.TypeStart:
		verb = "Started work"
	case event.TypeStop:
		verb = "Stopped work"
	default:
		verb = "Created marker"
	}
	line := verb + ":"
	if res.Event.Message != "" {
		line += " " + res.Event.Message
	}
	_, err := fmt.Fprintf(r.out, "%s %s\n", line, r.styles.Muted("[project: "+res.Project.Name+"]"))
	return err
}

func (r *Renderer) switched(res *tracker.Result) error {
	name := r.styles.Accent(res.Project.Name)
	var err error
	switch {
	case res.Switch.AlreadyCurrent:
		_, err = fmt.Fprintf(r.out, "Already on project: %s\n", name)
	case res.Switch.Created:
		_, err = fmt.Fprintf(r.out, "Switched to project: %s (created)\n", name)
	default:
		_, err = fmt.Fprintf(r.out, "Switched to project: %s\n", name)
	}
	return err
}

func (r *Renderer) events(res *tracker.Result) error {
	report := res.Events
	if _, err := fmt.Fprintf(r.out, "Project: %s\n\n", r.styles.Accent(res.Project.Name)); err != nil {
		return err
	}

	table := NewTable("Type", "Time", "Message")
	for _, evt := range report.Events {
		table.AddRow(r.styles.EventType(evt.Type), evt.Timestamp().Format(r.timeFormat), evt.Message)
	}
	if err := table.Render(r.out, r.styles.Bold); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.out, "\n%s %s\n", r.styles.Bold("Total time worked:"), report.Total); err != nil {
		return err
	}
	if !report.Session.IsRunning() {
		return nil
	}

	now := time.Unix(res.Now, 0)
	since := time.Unix(report.Session.Since, 0)
	_, err := fmt.Fprintf(r.out, "%s %s (since %s, %s)\n",
		r.styles.Running("Current session:"),
		event.FormatDuration(report.Session.Elapsed(now)),
		since.Format(r.timeFormat),
		humanize.RelTime(since, now, "ago", "from now"),
	)
	return err
}

func (r *Renderer) projects(res *tracker.Result, withDuration bool) error {
	headers := []string{"ID", "Name", "Status"}
	if withDuration {
		headers = append(headers, "Duration")
	}
	table := NewTable(headers...)

	var total int64
	for _, row := range res.Projects {
		status := row.Status()
		if row.Running {
			status = r.styles.Running(status)
		}
		table.AddRow(strconv.FormatInt(row.ID, 10), row.Name, status, row.Total)
		total += row.TotalSeconds
	}
	if err := table.Render(r.out, r.styles.Bold); err != nil {
		return err
	}

	if !withDuration {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "\n%s %s\n", r.styles.Bold("Total time worked:"), event.FormatSeconds(total))
	return err
}
