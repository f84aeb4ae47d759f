package schema

import (
	"fmt"
	"strings"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/temporal"
)

// ValidationError is the wholesale rejection of a batch. It carries every
// problem found, in batch order; no partial result accompanies it.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d problem(s) in batch", len(e.Errors))
}

// Validate checks every event in the batch and returns the complete list of
// problems found, each referencing the event's zero-based batch index.
// Events are checked independently and no check short-circuits another; an
// empty result admits the batch.
func Validate(events []Event) []string {
	var errs []string
	for i, ev := range events {
		errs = append(errs, validateEvent(i, ev)...)
	}
	return errs
}

func validateEvent(i int, ev Event) []string {
	var errs []string

	if strings.TrimSpace(ev.ContainerID) == "" {
		errs = append(errs, fmt.Sprintf("event %d: container_id is required and must be a non-blank string", i))
	}

	spec, known := Catalog[ev.EventType]
	if !known {
		errs = append(errs, fmt.Sprintf("event %d: unknown event_type %q", i, ev.EventType))
	}

	if _, err := temporal.ParseUTC(ev.Timestamp); err != nil {
		errs = append(errs, fmt.Sprintf("event %d: timestamp %q: %v", i, ev.Timestamp, err))
	}

	if strings.TrimSpace(ev.Location) == "" {
		errs = append(errs, fmt.Sprintf("event %d: location is required and must be a non-blank string", i))
	}

	// Metadata is checked for presence of required keys only; values are
	// not inspected further.
	if known && len(spec.Required) > 0 {
		if ev.Metadata == nil {
			errs = append(errs, fmt.Sprintf("event %d: metadata is required for event_type %q", i, ev.EventType))
		} else {
			for _, field := range spec.Required {
				if _, ok := ev.Metadata[field]; !ok {
					errs = append(errs, fmt.Sprintf("event %d: metadata field %q is required for event_type %q", i, field, ev.EventType))
				}
			}
		}
	}

	return errs
}
