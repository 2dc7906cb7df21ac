package ui

import (
	"fmt"

	"github.com/rpggio/worktracker/internal/domain/event"
)

// ANSI256 color codes.
const (
	colorStart  = 114 // green
	colorStop   = 203 // red
	colorMarker = 221 // yellow
	colorAccent = 74  // blue
	colorMuted  = 245 // medium gray
)

// Styles renders text with or without ANSI colors.
type Styles struct {
	color bool
}

// NewStyles returns Styles that only emit escape codes when color is set.
func NewStyles(color bool) Styles {
	return Styles{color: color}
}

func (s Styles) paint(code int, text string) string {
	if !s.color || text == "" {
		return text
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", code, text)
}

// Bold returns text in bold.
func (s Styles) Bold(text string) string {
	if !s.color || text == "" {
		return text
	}
	return "\x1b[1m" + text + "\x1b[0m"
}

// Accent returns text in the accent (blue) color.
func (s Styles) Accent(text string) string {
	return s.paint(colorAccent, text)
}

// Muted returns text in the muted (gray) color.
func (s Styles) Muted(text string) string {
	return s.paint(colorMuted, text)
}

// Running returns text in the start color.
func (s Styles) Running(text string) string {
	return s.paint(colorStart, text)
}

// EventType colors an event type: start green, stop red, marker yellow.
func (s Styles) EventType(typ event.Type) string {
	switch typ {
	case event.TypeStart:
		return s.paint(colorStart, string(typ))
	case event.TypeStop:
		return s.paint(colorStop, string(typ))
	case event.TypeMarker:
		return s.paint(colorMarker, string(typ))
	default:
		return string(typ)
	}
}
