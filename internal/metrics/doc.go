// Package metrics registers the Prometheus instruments for the processing
// service: batch outcomes, events ingested, anomalies by type, and the
// number of live containers in the store.
package metrics
