package api

import (
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
)

// ProcessResponse is the payload for a successfully processed batch.
type ProcessResponse struct {
	Success             bool             `json:"success"`
	BatchID             string           `json:"batch_id"`
	ContainersProcessed int              `json:"containers_processed"`
	Summaries           []engine.Summary `json:"summaries"`
}

// RejectionResponse is the wholesale batch rejection, forwarded from the
// core unchanged. File is set only by the CLI driver, annotating the source
// path.
type RejectionResponse struct {
	Error            string   `json:"error"`
	ValidationErrors []string `json:"validation_errors"`
	File             string   `json:"file,omitempty"`
}

// ContainerResponse is one live container in GET /api/v1/containers.
type ContainerResponse struct {
	engine.Summary
	LastSeen string `json:"last_seen"` // RFC3339
}

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	ContainerCount  int            `json:"container_count"`
	AnomalyCount    int            `json:"anomaly_count"`
	AnomaliesByType map[string]int `json:"anomalies_by_type"`
}

// errorResponse is a generic JSON error body for input shape errors.
type errorResponse struct {
	Error string `json:"error"`
}
