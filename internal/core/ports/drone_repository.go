package ports

import (
	"context"

	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone
// aggregates.
type DroneRepository interface {
	// Add persists a new drone aggregate to storage.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAll retrieves the whole fleet.
	GetAll(ctx context.Context) ([]*drone.Drone, error)

	// GetAllAvailableForUpdate retrieves every available drone and
	// locks the rows for the duration of the surrounding transaction.
	// Callers must run this inside a unit of work so that two
	// concurrent assignments cannot pick the same drone.
	GetAllAvailableForUpdate(ctx context.Context) ([]*drone.Drone, error)

	// GetAllDelivering retrieves every drone currently marked as
	// delivering. Used by the reconciliation job.
	GetAllDelivering(ctx context.Context) ([]*drone.Drone, error)

	// Delete removes a drone from the fleet.
	// Returns errs.ObjectNotFoundError when no such drone exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
