// Package kernel contains shared value objects used across the domain model:
// UUID identifiers, geographic points, and the caller identity (user id plus
// role). These types carry their own validation and are immutable once
// constructed, so aggregates can embed them without re-checking invariants.
package kernel
