package journey

import (
	"math"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/schema"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/temporal"
)

// Milestones is the ordered template journey completion is scored against.
// port_arrival appears twice: arrival at the origin port opens the journey,
// arrival at the destination port closes it.
var Milestones = []string{
	schema.TypePortArrival,
	schema.TypeCustomsClearance,
	schema.TypePortDeparture,
	schema.TypeInTransit,
	schema.TypePortArrival,
}

// Entry is one display record in a container's timeline.
type Entry struct {
	EventType    string `json:"event_type"`
	Timestamp    string `json:"timestamp"`
	Location     string `json:"location"`
	DelayMinutes *int   `json:"delay_minutes,omitempty"`
}

// StatusOf returns the status label implied by the chronologically last
// event of a sorted sequence.
func StatusOf(sorted []schema.Event) string {
	if len(sorted) == 0 {
		return schema.StatusInProgress
	}
	return schema.StatusFor(sorted[len(sorted)-1].EventType)
}

// Progress walks the sorted sequence once, advancing a pointer into the
// milestone template each time the current event matches the next
// unconsumed milestone. Returns consumed/total as a rounded percentage,
// capped at 100.
func Progress(sorted []schema.Event) int {
	next := 0
	for _, ev := range sorted {
		if next >= len(Milestones) {
			break
		}
		if ev.EventType == Milestones[next] {
			next++
		}
	}
	pct := int(math.Round(float64(next) / float64(len(Milestones)) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Build projects each event of a sorted sequence into a timeline entry.
// A port_arrival carrying expected_arrival gets delay_minutes attached when
// the delay computation succeeds.
func Build(sorted []schema.Event) []Entry {
	out := make([]Entry, 0, len(sorted))
	for _, ev := range sorted {
		entry := Entry{
			EventType: ev.EventType,
			Timestamp: ev.Timestamp,
			Location:  ev.Location,
		}
		if ev.EventType == schema.TypePortArrival {
			if expected, ok := ev.MetaString(schema.MetaExpectedArrival); ok {
				if d, ok := temporal.DelayMinutes(ev.Timestamp, expected); ok {
					entry.DelayMinutes = &d
				}
			}
		}
		out = append(out, entry)
	}
	return out
}
