package engine

import (
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/anomaly"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/journey"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/schema"
)

// AnomalyNote is the surfaced form of a detected anomaly: type and message
// only. Timestamps are intermediate detail used for ordering and messages.
type AnomalyNote struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Summary is the derived per-container view returned for each group.
type Summary struct {
	ContainerID     string          `json:"container_id"`
	CurrentStatus   string          `json:"current_status"`
	CurrentLocation string          `json:"current_location"`
	LastEventTime   string          `json:"last_event_time"`
	Timeline        []journey.Entry `json:"timeline"`
	Anomalies       []AnomalyNote   `json:"anomalies"`
	JourneyProgress int             `json:"journey_progress"`
}

// Engine runs the processing pipeline with a fixed anomaly detector.
type Engine struct {
	det *anomaly.Detector
}

// New returns an Engine whose detector uses th.
func New(th anomaly.Thresholds) *Engine {
	return &Engine{det: anomaly.New(th)}
}

// Process validates the batch and derives one summary per container, in
// first-appearance order of container_id. On validation failure it returns
// a *schema.ValidationError carrying every problem found and no summaries.
func (e *Engine) Process(events []schema.Event) ([]Summary, error) {
	if errs := schema.Validate(events); len(errs) > 0 {
		return nil, &schema.ValidationError{Errors: errs}
	}

	order, groups := groupByContainer(events)
	out := make([]Summary, 0, len(order))
	for _, id := range order {
		out = append(out, e.summarize(id, groups[id]))
	}
	return out, nil
}

// groupByContainer partitions events by container_id. The returned order
// slice preserves first appearance explicitly rather than relying on map
// iteration.
func groupByContainer(events []schema.Event) ([]string, map[string][]schema.Event) {
	var order []string
	groups := make(map[string][]schema.Event)
	for _, ev := range events {
		if _, seen := groups[ev.ContainerID]; !seen {
			order = append(order, ev.ContainerID)
		}
		groups[ev.ContainerID] = append(groups[ev.ContainerID], ev)
	}
	return order, groups
}

func (e *Engine) summarize(id string, group []schema.Event) Summary {
	sorted := schema.Sorted(group)
	last := sorted[len(sorted)-1]

	detected := e.det.Detect(group)
	notes := make([]AnomalyNote, 0, len(detected))
	for _, a := range detected {
		notes = append(notes, AnomalyNote{Type: a.Type, Message: a.Message})
	}

	return Summary{
		ContainerID:     id,
		CurrentStatus:   journey.StatusOf(sorted),
		CurrentLocation: last.Location,
		LastEventTime:   last.Timestamp,
		Timeline:        journey.Build(sorted),
		Anomalies:       notes,
		JourneyProgress: journey.Progress(sorted),
	}
}
