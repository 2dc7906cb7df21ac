package event

import "time"

// Type is the kind of a tracked event.
type Type string

const (
	TypeStart  Type = "start"
	TypeStop   Type = "stop"
	TypeMarker Type = "marker"
)

// Valid reports whether t is one of the known event types.
func (t Type) Valid() bool {
	switch t {
	case TypeStart, TypeStop, TypeMarker:
		return true
	default:
		return false
	}
}

// Event is an immutable entry in the append-only work log.
type Event struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Type      Type   `json:"type"`
	Time      int64  `json:"time"` // unix seconds
	ProjectID int64  `json:"project_id"`
}

// Timestamp returns the event time in the local zone.
func (e Event) Timestamp() time.Time {
	return time.Unix(e.Time, 0)
}
