package event

import "time"

// SessionStatus is the run state of a project's work session.
type SessionStatus string

const (
	SessionIdle    SessionStatus = "idle"
	SessionRunning SessionStatus = "running"
)

// SessionState is either Idle or Running since a start time.
// Since is only meaningful while Running.
type SessionState struct {
	Status SessionStatus `json:"status"`
	Since  int64         `json:"since,omitempty"`
}

// Idle returns the idle state.
func Idle() SessionState {
	return SessionState{Status: SessionIdle}
}

// Running returns a state opened at since (unix seconds).
func Running(since int64) SessionState {
	return SessionState{Status: SessionRunning, Since: since}
}

// IsRunning reports whether a session is open.
func (s SessionState) IsRunning() bool {
	return s.Status == SessionRunning
}

// Elapsed returns how long the session has been open at now, or zero when idle.
func (s SessionState) Elapsed(now time.Time) time.Duration {
	if !s.IsRunning() {
		return 0
	}
	return now.Sub(time.Unix(s.Since, 0))
}

// DeriveSession folds an ordered event log into the current session state.
// It follows the same rules as TotalSeconds: the latest start wins, a stop
// closes whatever is open, markers change nothing.
func DeriveSession(events []Event) SessionState {
	state := Idle()
	for _, evt := range events {
		switch evt.Type {
		case TypeStart:
			state = Running(evt.Time)
		case TypeStop:
			state = Idle()
		}
	}
	return state
}
