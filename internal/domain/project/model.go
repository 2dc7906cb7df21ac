package project

// DefaultName is the project created when the registry is first initialized.
const DefaultName = "default"

// Project is a named bucket of events. Exactly one project is current.
type Project struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// Fallback is the synthesized current project used when the registry
// cannot produce one.
func Fallback() Project {
	return Project{ID: 1, Name: DefaultName, IsDefault: true}
}

// SwitchResult describes what a switch did.
type SwitchResult struct {
	Project        Project `json:"project"`
	Created        bool    `json:"created"`
	AlreadyCurrent bool    `json:"already_current"`
}
