// Package anomaly evaluates the four anomaly rules over one container's
// event history: late arrival, unusual gap, duplicate event, and
// out-of-sequence transition.
//
// The detector sorts the events chronologically (stable), then walks them in
// index order applying every rule to every event. Rules are independent and
// not mutually exclusive; a single event can trigger several anomaly types.
// Thresholds come from configuration; DefaultThresholds matches the
// operational baseline (2h late arrival, 24h gap, 1h duplicate window).
package anomaly
