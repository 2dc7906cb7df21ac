package event

import (
	"fmt"
	"time"
)

// TotalSeconds reduces an ordered event sequence into worked seconds.
//
// A start opens an interval and a stop closes it. A second start without an
// intervening stop replaces the open interval, so the earlier one is dropped.
// A stop with nothing open and every marker are ignored. An interval still
// open after the last event counts up to now, which makes the result depend
// on when it is evaluated.
func TotalSeconds(events []Event, now time.Time) int64 {
	var total int64
	var openStart int64
	open := false

	for _, evt := range events {
		switch evt.Type {
		case TypeStart:
			openStart = evt.Time
			open = true
		case TypeStop:
			if open {
				total += evt.Time - openStart
				open = false
			}
		}
	}

	if open {
		total += now.Unix() - openStart
	}
	return total
}

// FormatSeconds renders seconds as "{h}h {m}m {s}s". Hours are unbounded.
func FormatSeconds(total int64) string {
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// FormatDuration is FormatSeconds for a time.Duration, truncated to seconds.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d / time.Second))
}
