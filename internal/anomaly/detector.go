package anomaly

import (
	"fmt"
	"math"
	"time"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/schema"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/temporal"
)

// Anomaly type names.
const (
	TypeLateArrival    = "late_arrival"
	TypeUnusualGap     = "unusual_gap"
	TypeDuplicateEvent = "duplicate_event"
	TypeOutOfSequence  = "out_of_sequence"
)

// Thresholds are the tunable limits the rules fire against.
type Thresholds struct {
	// LateArrival is the delay past expected_arrival beyond which a
	// port_arrival is flagged.
	LateArrival time.Duration

	// Gap is the maximum silence between consecutive events.
	Gap time.Duration

	// DuplicateWindow is how close two same-type events must be to count
	// as a duplicate.
	DuplicateWindow time.Duration
}

// DefaultThresholds returns the operational baseline.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LateArrival:     2 * time.Hour,
		Gap:             24 * time.Hour,
		DuplicateWindow: time.Hour,
	}
}

// Anomaly is one detected deviation. At is the triggering event's timestamp;
// only Type and Message surface in the container summary.
type Anomaly struct {
	Type    string
	Message string
	At      time.Time
}

// Detector applies the four rules with a fixed set of thresholds.
type Detector struct {
	th Thresholds
}

// New returns a Detector using th.
func New(th Thresholds) *Detector {
	return &Detector{th: th}
}

// Detect evaluates all rules over one container's events. The input need not
// be sorted; detection order follows the chronological order of triggering
// events, rules applied per event in fixed order.
func (d *Detector) Detect(events []schema.Event) []Anomaly {
	sorted := schema.Sorted(events)

	// Timestamps were validated upstream; a parse failure here is a defect
	// and the event simply contributes a zero time.
	times := make([]time.Time, len(sorted))
	for i, ev := range sorted {
		times[i], _ = temporal.ParseUTC(ev.Timestamp)
	}

	var out []Anomaly
	for i, ev := range sorted {
		if a, ok := d.lateArrival(ev, times[i]); ok {
			out = append(out, a)
		}
		if i > 0 {
			if a, ok := d.unusualGap(sorted[i-1], ev, times[i-1], times[i]); ok {
				out = append(out, a)
			}
		}
		if a, ok := d.duplicate(sorted, times, i); ok {
			out = append(out, a)
		}
		if i < len(sorted)-1 {
			if a, ok := d.outOfSequence(ev, sorted[i+1], times[i+1]); ok {
				out = append(out, a)
			}
		}
	}
	return out
}

// lateArrival flags a port_arrival whose delay past metadata.expected_arrival
// exceeds the threshold.
func (d *Detector) lateArrival(ev schema.Event, at time.Time) (Anomaly, bool) {
	if ev.EventType != schema.TypePortArrival {
		return Anomaly{}, false
	}
	expected, ok := ev.MetaString(schema.MetaExpectedArrival)
	if !ok {
		return Anomaly{}, false
	}
	delay, ok := temporal.DelayMinutes(ev.Timestamp, expected)
	if !ok || float64(delay) <= d.th.LateArrival.Minutes() {
		return Anomaly{}, false
	}
	return Anomaly{
		Type:    TypeLateArrival,
		Message: fmt.Sprintf("container arrived %d minutes later than expected", delay),
		At:      at,
	}, true
}

// unusualGap flags a silence longer than the threshold between consecutive
// sorted events, attributed to the later event.
func (d *Detector) unusualGap(prev, cur schema.Event, prevAt, curAt time.Time) (Anomaly, bool) {
	gap := temporal.GapHours(prevAt, curAt)
	if gap <= d.th.Gap.Hours() {
		return Anomaly{}, false
	}
	return Anomaly{
		Type: TypeUnusualGap,
		Message: fmt.Sprintf("%.0f hour gap between %s and %s",
			math.Round(gap), prev.EventType, cur.EventType),
		At: curAt,
	}, true
}

// duplicate scans strictly forward from index i for the first later event of
// the same type and flags it when it falls within the duplicate window. The
// scan stops at the first same-type match whether or not it qualifies: a
// same-type event beyond the window suppresses detection of any closer
// duplicate further on. That suppression is the defined behavior.
func (d *Detector) duplicate(sorted []schema.Event, times []time.Time, i int) (Anomaly, bool) {
	for j := i + 1; j < len(sorted); j++ {
		if sorted[j].EventType != sorted[i].EventType {
			continue
		}
		gap := temporal.GapHours(times[i], times[j])
		if gap <= d.th.DuplicateWindow.Hours() {
			return Anomaly{
				Type: TypeDuplicateEvent,
				Message: fmt.Sprintf("duplicate %s events %d minutes apart",
					sorted[i].EventType, int(math.Round(times[j].Sub(times[i]).Minutes()))),
				At: times[j],
			}, true
		}
		break
	}
	return Anomaly{}, false
}

// outOfSequence flags a successor not permitted by the current event's type.
// Types with no successor constraint admit anything.
func (d *Detector) outOfSequence(cur, next schema.Event, nextAt time.Time) (Anomaly, bool) {
	if schema.AllowsSuccessor(cur.EventType, next.EventType) {
		return Anomaly{}, false
	}
	return Anomaly{
		Type:    TypeOutOfSequence,
		Message: fmt.Sprintf("%s followed by %s is not an expected transition", cur.EventType, next.EventType),
		At:      nextAt,
	}, true
}
