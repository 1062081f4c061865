// Package delivery contains the Delivery aggregate and its Status and
// Priority value objects. The aggregate enforces the lifecycle state
// machine: pending deliveries are assignable, preparing and in-transit
// deliveries carry a bound drone, and delivered/cancelled/failed are
// terminal. Drone pool bookkeeping lives in the drone package; the two are
// coordinated by the application layer inside one unit of work.
package delivery
