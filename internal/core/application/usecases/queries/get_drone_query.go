package queries

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrGetDroneQueryIsNotConstructed = errors.New(
	"GetDroneQuery must be created via NewGetDroneQuery constructor",
)

// GetDroneQuery retrieves one fleet drone by identifier.
type GetDroneQuery struct {
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDroneQuery creates a query for the given drone.
func NewGetDroneQuery(droneID kernel.UUID) (GetDroneQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetDroneQuery{}, err
	}

	return GetDroneQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDroneQuery) Validate() error {
	return q.guard.Validate(ErrGetDroneQueryIsNotConstructed)
}

// DroneID returns the drone being looked up.
func (q GetDroneQuery) DroneID() kernel.UUID {
	return q.droneID
}
