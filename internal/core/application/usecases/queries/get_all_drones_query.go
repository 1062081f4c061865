package queries

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrGetAllDronesQueryIsNotConstructed = errors.New(
	"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor",
)

// GetAllDronesQuery retrieves the whole fleet for the admin dashboard.
type GetAllDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDronesQuery creates a parameterless query that fetches every
// drone in the fleet.
func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDronesQueryIsNotConstructed)
}

// DroneResponse is the read model for a single fleet drone.
type DroneResponse struct {
	ID                kernel.UUID
	Name              string
	Model             string
	Status            string
	BatteryLevel      int
	MaxPayloadKg      float64
	MaxRangeKm        float64
	CurrentDeliveryID *kernel.UUID
}
