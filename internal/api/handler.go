package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Pratikshinde2410/container-event-processing-engine/internal/anomaly"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/engine"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/metrics"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/schema"
	"github.com/Pratikshinde2410/container-event-processing-engine/internal/store"
)

// Handler is the HTTP handler for all /api/v1/* endpoints.
type Handler struct {
	mu      sync.RWMutex
	eng     *engine.Engine
	store   *store.Store
	metrics *metrics.Metrics
	router  *mux.Router
}

// New creates a Handler wired to the given engine, store and metrics, and
// registers all routes.
func New(eng *engine.Engine, st *store.Store, m *metrics.Metrics) *Handler {
	h := &Handler{eng: eng, store: st, metrics: m}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/events", h.postEvents).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/shipments", h.postShipments).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/containers", h.listContainers).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/containers/{id}", h.getContainer).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/health", h.health).Methods(http.MethodGet)
	h.router = r

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// UpdateThresholds swaps the engine for one using th. Called from the
// config hot-reload path; in-flight requests finish on the old engine.
func (h *Handler) UpdateThresholds(th anomaly.Thresholds) {
	h.mu.Lock()
	h.eng = engine.New(th)
	h.mu.Unlock()
	slog.Info("api: anomaly thresholds updated",
		"late_arrival", th.LateArrival,
		"unusual_gap", th.Gap,
		"duplicate_window", th.DuplicateWindow,
	)
}

// --- route handlers ---------------------------------------------------------

// postEvents handles POST /api/v1/events, a JSON array of events.
func (h *Handler) postEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.shapeErr(w, "could not read request body")
		return
	}
	if !topLevelArray(body) {
		h.shapeErr(w, "request body must be a JSON array of events")
		return
	}

	var events []schema.Event
	if err := json.Unmarshal(body, &events); err != nil {
		h.shapeErr(w, "invalid JSON: "+err.Error())
		return
	}
	if len(events) == 0 {
		h.shapeErr(w, "event batch must not be empty")
		return
	}

	h.process(w, events)
}

// postShipments handles POST /api/v1/shipments, a JSON array of
// {container_id, events}, flattened by stamping each embedded event.
func (h *Handler) postShipments(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.shapeErr(w, "could not read request body")
		return
	}
	if !topLevelArray(body) {
		h.shapeErr(w, "request body must be a JSON array of shipments")
		return
	}

	var shipments []schema.Shipment
	if err := json.Unmarshal(body, &shipments); err != nil {
		h.shapeErr(w, "invalid JSON: "+err.Error())
		return
	}
	if len(shipments) == 0 {
		h.shapeErr(w, "shipment batch must not be empty")
		return
	}

	events := schema.Flatten(shipments)
	if len(events) == 0 {
		h.shapeErr(w, "shipment batch carries no events")
		return
	}

	h.process(w, events)
}

// process runs the core engine over an admitted-shape batch and writes
// either the success payload or the rejection body verbatim.
func (h *Handler) process(w http.ResponseWriter, events []schema.Event) {
	h.mu.RLock()
	eng := h.eng
	h.mu.RUnlock()

	summaries, err := eng.Process(events)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			h.metrics.BatchesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			slog.Warn("api: batch rejected", "events", len(events), "problems", len(verr.Errors))
			jsonResp(w, http.StatusBadRequest, RejectionResponse{
				Error:            "Validation failed",
				ValidationErrors: verr.Errors,
			})
			return
		}
		slog.Error("api: processing failed", "err", err)
		jsonErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	batchID := uuid.NewString()
	for _, s := range summaries {
		h.store.Put(s)
		for _, a := range s.Anomalies {
			h.metrics.AnomaliesTotal.WithLabelValues(a.Type).Inc()
		}
	}
	h.metrics.BatchesTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	h.metrics.EventsTotal.Add(float64(len(events)))

	slog.Info("api: batch processed",
		"batch_id", batchID,
		"events", len(events),
		"containers", len(summaries),
	)

	jsonResp(w, http.StatusOK, ProcessResponse{
		Success:             true,
		BatchID:             batchID,
		ContainersProcessed: len(summaries),
		Summaries:           summaries,
	})
}

// listContainers handles GET /api/v1/containers: all live summaries.
func (h *Handler) listContainers(w http.ResponseWriter, r *http.Request) {
	entries := h.store.List()
	out := make([]ContainerResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toContainerResponse(e))
	}
	jsonResp(w, http.StatusOK, out)
}

// getContainer handles GET /api/v1/containers/{id}: a single live summary.
func (h *Handler) getContainer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	e, ok := h.store.Get(id)
	if !ok {
		jsonErr(w, http.StatusNotFound, "container not found")
		return
	}
	// Stale entries are treated as not found.
	if time.Since(e.UpdatedAt) > h.store.TTL() {
		jsonErr(w, http.StatusNotFound, "container not found")
		return
	}

	jsonResp(w, http.StatusOK, toContainerResponse(e))
}

// health handles GET /api/v1/health: live container and anomaly counts.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	entries := h.store.List()
	resp := HealthResponse{
		ContainerCount:  len(entries),
		AnomaliesByType: make(map[string]int),
	}
	for _, e := range entries {
		for _, a := range e.Summary.Anomalies {
			resp.AnomalyCount++
			resp.AnomaliesByType[a.Type]++
		}
	}
	jsonResp(w, http.StatusOK, resp)
}

// --- helpers ----------------------------------------------------------------

// topLevelArray reports whether the body's first non-space byte opens a
// JSON array. Distinguishes shape errors from element-level decode errors.
func topLevelArray(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func (h *Handler) shapeErr(w http.ResponseWriter, msg string) {
	h.metrics.BatchesTotal.WithLabelValues(metrics.OutcomeShapeError).Inc()
	jsonErr(w, http.StatusBadRequest, msg)
}

func toContainerResponse(e *store.Entry) ContainerResponse {
	return ContainerResponse{
		Summary:  e.Summary,
		LastSeen: e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
