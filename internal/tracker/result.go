package tracker

import (
	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/rpggio/worktracker/internal/domain/project"
)

// Result is the structured outcome of one command.
type Result struct {
	Action  Action          `json:"action"`
	Project project.Project `json:"project"`
	Now     int64           `json:"now"`

	// Event is set for record and stop.
	Event *event.Event `json:"event,omitempty"`

	// Switch is set for switch.
	Switch *project.SwitchResult `json:"switch,omitempty"`

	// Events is set for list_events.
	Events *EventsReport `json:"events,omitempty"`

	// Projects is set for list_projects and summary.
	Projects []ProjectRow `json:"projects,omitempty"`
}

// EventsReport is one project's log reduced at Result.Now.
type EventsReport struct {
	Events       []event.Event      `json:"events"`
	Session      event.SessionState `json:"session"`
	TotalSeconds int64              `json:"total_seconds"`
	Total        string             `json:"total"`
}

// ProjectRow is one line of the projects and summary reports.
// Duration fields are only filled for summary.
type ProjectRow struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Current      bool   `json:"current"`
	Running      bool   `json:"running"`
	TotalSeconds int64  `json:"total_seconds"`
	Total        string `json:"total,omitempty"`
}

// Status renders the row's state for tables.
func (r ProjectRow) Status() string {
	switch {
	case r.Current && r.Running:
		return "current, running"
	case r.Current:
		return "current"
	case r.Running:
		return "running"
	default:
		return ""
	}
}
