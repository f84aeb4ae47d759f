// Package api is the HTTP adapter over the processing engine. It parses
// JSON request bodies, forwards batches to engine.Process, maps results to
// status codes, and serves dashboard reads from the summary store.
//
// The adapter owns input shape errors only (non-array body, empty batch,
// unparseable JSON). Schema validation lives in the core; its rejection body
// is forwarded verbatim.
package api
