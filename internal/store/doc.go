// Package store holds the most recent summary per container for dashboard
// reads. It is a thread-safe in-memory store with TTL eviction; a background
// goroutine (Run) removes containers that have not been updated within the
// configured retention window. Nothing survives a process restart.
package store
