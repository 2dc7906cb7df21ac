package event_test

import (
	"testing"
	"time"

	"github.com/rpggio/worktracker/internal/domain/event"
	"github.com/stretchr/testify/require"
)

func evt(typ event.Type, at int64) event.Event {
	return event.Event{Type: typ, Time: at}
}

func TestTotalSeconds_ClosedInterval(t *testing.T) {
	events := []event.Event{evt(event.TypeStart, 100), evt(event.TypeStop, 160)}

	total := event.TotalSeconds(events, time.Unix(10_000, 0))
	require.Equal(t, int64(60), total)
	require.Equal(t, "0h 1m 0s", event.FormatSeconds(total))
}

func TestTotalSeconds_DoubleStartKeepsLatest(t *testing.T) {
	events := []event.Event{
		evt(event.TypeStart, 0),
		evt(event.TypeStart, 50),
		evt(event.TypeStop, 200),
	}

	total := event.TotalSeconds(events, time.Unix(10_000, 0))
	require.Equal(t, int64(150), total)
	require.Equal(t, "0h 2m 30s", event.FormatSeconds(total))
}

func TestTotalSeconds_OpenStartCountsUntilNow(t *testing.T) {
	const start = int64(1_700_000_000)
	events := []event.Event{evt(event.TypeStart, start)}

	total := event.TotalSeconds(events, time.Unix(start+3661, 0))
	require.Equal(t, "1h 1m 1s", event.FormatSeconds(total))
}

func TestTotalSeconds_IgnoresMarkersAndStrayStops(t *testing.T) {
	events := []event.Event{
		evt(event.TypeStop, 10),
		evt(event.TypeStart, 20),
		evt(event.TypeMarker, 25),
		evt(event.TypeMarker, 30),
		evt(event.TypeStop, 40),
		evt(event.TypeStop, 90),
	}

	require.Equal(t, int64(20), event.TotalSeconds(events, time.Unix(1_000, 0)))
}

func TestTotalSeconds_Empty(t *testing.T) {
	require.Equal(t, int64(0), event.TotalSeconds(nil, time.Now()))
	require.Equal(t, "0h 0m 0s", event.FormatSeconds(0))
}

func TestTotalSeconds_MonotonicAsIntervalsAppend(t *testing.T) {
	now := time.Unix(1_000_000, 0)
	var events []event.Event
	var previous int64

	at := int64(1_000)
	for i := 0; i < 20; i++ {
		events = append(events, evt(event.TypeStart, at))
		at += int64(i*37 + 5)
		if i%3 == 0 {
			events = append(events, evt(event.TypeMarker, at))
		}
		events = append(events, evt(event.TypeStop, at))
		at += 11

		total := event.TotalSeconds(events, now)
		require.GreaterOrEqual(t, total, previous, "after interval %d", i)
		previous = total
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{59, "0h 0m 59s"},
		{60, "0h 1m 0s"},
		{3599, "0h 59m 59s"},
		{3600, "1h 0m 0s"},
		{100 * 3600, "100h 0m 0s"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, event.FormatSeconds(tt.seconds))
	}
	require.Equal(t, "0h 2m 5s", event.FormatDuration(125*time.Second+400*time.Millisecond))
}
