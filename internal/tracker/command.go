package tracker

// Action is the single operation a Command resolves to.
type Action string

const (
	ActionRecord       Action = "record"
	ActionStop         Action = "stop"
	ActionSwitch       Action = "switch"
	ActionListEvents   Action = "list_events"
	ActionListProjects Action = "list_projects"
	ActionSummary      Action = "summary"
)

// Command is a parsed invocation.
type Command struct {
	Message string
	Stop    bool

	// Switch requests making SwitchTo the current project. The name is
	// validated by the project registry, so an empty one is an error rather
	// than a bare record.
	Switch   bool
	SwitchTo string

	// Project overrides the target of record and list actions without
	// switching the current project.
	Project string

	ListEvents   bool
	ListProjects bool
	Summary      bool
}

// Action resolves the command. Stop wins over a switch, a switch over the
// read-only reports, and a bare command records.
func (c Command) Action() Action {
	switch {
	case c.Stop:
		return ActionStop
	case c.Switch:
		return ActionSwitch
	case c.ListEvents:
		return ActionListEvents
	case c.ListProjects:
		return ActionListProjects
	case c.Summary:
		return ActionSummary
	default:
		return ActionRecord
	}
}
