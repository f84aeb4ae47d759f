// Package engine orchestrates batch processing: it validates the whole
// batch, groups events by container preserving first-appearance order, runs
// the anomaly detector and journey derivation per group, and assembles one
// summary per container.
//
// Process is a stateless, idempotent pure transform: identical input yields
// identical output. A batch either validates completely or is rejected
// wholesale with a *schema.ValidationError; there is no partial result.
package engine
