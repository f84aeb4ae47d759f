// Package journey derives the presentation view of one container's sorted
// event history: the current status label, the journey-progress percentage
// against the milestone template, and the display timeline.
//
// Progress is a pure pointer walk over the template. A milestone type that
// appears twice in the template (port_arrival opens and closes the journey)
// is consumable at each position (there is no "seen types" guard), so a
// completed journey reaches 100%. The pointer only advances, which keeps
// progress monotonically non-decreasing.
package journey
