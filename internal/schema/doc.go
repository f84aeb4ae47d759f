// Package schema defines the tracking event input model and the catalog of
// recognized event types, and validates incoming batches against it.
//
// The catalog is the single source of truth: one TypeSpec per event type
// carries the required metadata fields, the container status the type
// implies, and the set of permitted successor types. Keeping these
// properties in one record per type makes duplicate or drifting entries
// impossible.
//
// Validate checks every event in a batch independently and returns the full
// list of problems; a batch is admitted entirely or rejected wholesale.
package schema
