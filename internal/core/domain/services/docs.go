// Package services contains stateless domain services that coordinate
// multiple aggregates: drone allocation and route planning.
package services
