package schema

import (
	"sort"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/temporal"
)

// MetaExpectedArrival is the optional metadata key carrying the expected
// arrival time for port_arrival events. It feeds delay computation; it is
// never a required field.
const MetaExpectedArrival = "expected_arrival"

// Event is one timestamped observation about a container's movement or
// customs state. Events are immutable once received and have no identity
// beyond structural equality.
type Event struct {
	ContainerID string         `json:"container_id"`
	EventType   string         `json:"event_type"`
	Timestamp   string         `json:"timestamp"` // RFC 3339, unambiguous UTC
	Location    string         `json:"location"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// MetaString returns the metadata value for key when it is present and a
// string.
func (e Event) MetaString(key string) (string, bool) {
	v, ok := e.Metadata[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Shipment is the nested input form: one container with its embedded events.
type Shipment struct {
	ContainerID string  `json:"container_id"`
	Events      []Event `json:"events"`
}

// Flatten turns a shipment array into a single event list by stamping each
// embedded event with its shipment's container_id. Event order within and
// across shipments is preserved.
func Flatten(shipments []Shipment) []Event {
	var out []Event
	for _, sh := range shipments {
		for _, ev := range sh.Events {
			ev.ContainerID = sh.ContainerID
			out = append(out, ev)
		}
	}
	return out
}

// Sorted returns a chronologically ordered copy of events. The sort is
// stable: ties and unparseable timestamps keep their original batch order.
func Sorted(events []Event) []Event {
	out := make([]Event, len(events))
	copy(out, events)

	times := make([]int64, len(out))
	for i, ev := range out {
		if t, err := temporal.ParseUTC(ev.Timestamp); err == nil {
			times[i] = t.UnixNano()
		}
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return times[idx[a]] < times[idx[b]]
	})

	sorted := make([]Event, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}
