// Package temporal holds the pure time helpers shared by the anomaly
// detector and the timeline builder: strict UTC timestamp parsing, arrival
// delay in whole minutes, and inter-event gaps in hours.
//
// All temporal reasoning works from timestamps supplied in the input;
// nothing here reads the wall clock.
package temporal
