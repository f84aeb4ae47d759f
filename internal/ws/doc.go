// Package ws streams live container summaries to dashboard clients over
// WebSocket. The hub broadcasts the current store contents on a fixed
// interval and immediately on connect; slow clients are disconnected rather
// than allowed to stall the broadcast.
package ws
