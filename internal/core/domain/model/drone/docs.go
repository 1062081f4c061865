// Package drone contains the Drone aggregate: a fleet resource that is
// allocated to at most one active delivery at a time and returned to
// the pool when the delivery reaches a terminal state.
package drone
