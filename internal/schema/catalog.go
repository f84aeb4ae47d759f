package schema

// Recognized event type names.
const (
	TypePortArrival          = "port_arrival"
	TypePortDeparture        = "port_departure"
	TypeCustomsClearance     = "customs_clearance"
	TypeCustomsHold          = "customs_hold"
	TypeCustomsInspection    = "customs_inspection"
	TypeDocumentationHold    = "documentation_hold"
	TypeRoadCheckpoint       = "road_checkpoint"
	TypeLCLPickup            = "lcl_pickup"
	TypeLCLConsolidation     = "lcl_consolidation"
	TypeLCLDeconsolidation   = "lcl_deconsolidation"
	TypeLCLDelivery          = "lcl_delivery"
	TypeLCLDamageInspection  = "lcl_damage_inspection"
	TypeTransshipmentArrival = "transshipment_arrival"
	TypeTransshipmentLoading = "transshipment_loading"
	TypeInTransit            = "in_transit"
)

// Status labels derived from the latest event type.
const (
	StatusArrivedAtPort        = "arrived_at_port"
	StatusDeparted             = "departed"
	StatusCustomsCleared       = "customs_cleared"
	StatusCustomsHold          = "customs_hold"
	StatusUnderInspection      = "under_inspection"
	StatusDocumentationHold    = "documentation_hold"
	StatusAtCheckpoint         = "at_checkpoint"
	StatusPickedUp             = "picked_up"
	StatusConsolidated         = "consolidated"
	StatusDeconsolidated       = "deconsolidated"
	StatusDelivered            = "delivered"
	StatusDamageInspection     = "damage_inspection"
	StatusTransshipmentArrival = "transshipment_arrival"
	StatusTransshipmentLoading = "transshipment_loading"
	StatusInTransit            = "in_transit"

	// StatusInProgress is the fallback for types without a mapping.
	StatusInProgress = "in_progress"
)

// TypeSpec describes one recognized event type: the metadata fields it must
// carry, the container status it implies, and the event types permitted to
// follow it. An empty Successors set imposes no sequencing constraint.
type TypeSpec struct {
	Required   []string
	Status     string
	Successors []string
}

// Catalog is the single source of truth for the 15 recognized event types.
// One record per type: the status lookup cannot carry duplicate entries and
// the required-field and successor tables cannot drift apart.
var Catalog = map[string]TypeSpec{
	TypePortArrival: {
		Required: []string{"port_code"},
		Status:   StatusArrivedAtPort,
		Successors: []string{
			TypeCustomsClearance, TypeCustomsHold, TypeCustomsInspection,
			TypeDocumentationHold, TypeLCLDeconsolidation, TypeTransshipmentLoading,
		},
	},
	TypePortDeparture: {
		Required:   []string{"port_code"},
		Status:     StatusDeparted,
		Successors: []string{TypeInTransit, TypeTransshipmentArrival, TypePortArrival},
	},
	TypeCustomsClearance: {
		Required: []string{"status"},
		Status:   StatusCustomsCleared,
		Successors: []string{
			TypePortDeparture, TypeLCLDeconsolidation, TypeLCLDelivery,
			TypeRoadCheckpoint, TypeInTransit,
		},
	},
	TypeCustomsHold: {
		Required:   []string{"reason"},
		Status:     StatusCustomsHold,
		Successors: []string{TypeCustomsInspection, TypeCustomsClearance, TypeDocumentationHold},
	},
	TypeCustomsInspection: {
		Required:   []string{"inspection_type"},
		Status:     StatusUnderInspection,
		Successors: []string{TypeCustomsClearance, TypeCustomsHold, TypeLCLDamageInspection},
	},
	TypeDocumentationHold: {
		Required:   []string{"missing_documents"},
		Status:     StatusDocumentationHold,
		Successors: []string{TypeCustomsClearance, TypeCustomsHold},
	},
	TypeRoadCheckpoint: {
		Required: []string{"checkpoint_name"},
		Status:   StatusAtCheckpoint,
		// Unconstrained: road legs interleave with almost anything.
	},
	TypeLCLPickup: {
		Required:   []string{"pickup_reference"},
		Status:     StatusPickedUp,
		Successors: []string{TypeLCLConsolidation, TypeRoadCheckpoint, TypeInTransit},
	},
	TypeLCLConsolidation: {
		Required: []string{"consolidation_id"},
		Status:   StatusConsolidated,
		// Unconstrained: consolidated cargo may next appear at a port,
		// a checkpoint, or in transit.
	},
	TypeLCLDeconsolidation: {
		Required:   []string{"consolidation_id"},
		Status:     StatusDeconsolidated,
		Successors: []string{TypeLCLDelivery, TypeRoadCheckpoint, TypeLCLDamageInspection},
	},
	TypeLCLDelivery: {
		Required: []string{"delivery_reference"},
		Status:   StatusDelivered,
		// Unconstrained: delivery is usually terminal but the data may
		// carry trailing administrative events.
	},
	TypeLCLDamageInspection: {
		Required: []string{"damage_report_id"},
		Status:   StatusDamageInspection,
		// Unconstrained.
	},
	TypeTransshipmentArrival: {
		Required:   []string{"vessel_name"},
		Status:     StatusTransshipmentArrival,
		Successors: []string{TypeTransshipmentLoading, TypePortDeparture},
	},
	TypeTransshipmentLoading: {
		Required:   []string{"vessel_name"},
		Status:     StatusTransshipmentLoading,
		Successors: []string{TypePortDeparture, TypeInTransit},
	},
	TypeInTransit: {
		Status: StatusInTransit,
		// No required metadata, no successor constraint.
	},
}

// Known reports whether eventType is a member of the catalog.
func Known(eventType string) bool {
	_, ok := Catalog[eventType]
	return ok
}

// StatusFor maps an event type to its status label, falling back to
// StatusInProgress for unmapped types.
func StatusFor(eventType string) string {
	if spec, ok := Catalog[eventType]; ok && spec.Status != "" {
		return spec.Status
	}
	return StatusInProgress
}

// AllowsSuccessor reports whether next may immediately follow current.
// Types with an empty successor set allow any successor.
func AllowsSuccessor(current, next string) bool {
	spec, ok := Catalog[current]
	if !ok || len(spec.Successors) == 0 {
		return true
	}
	for _, s := range spec.Successors {
		if s == next {
			return true
		}
	}
	return false
}
