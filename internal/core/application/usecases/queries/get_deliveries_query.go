// Package queries contains read-only operations in the CQRS
// architecture. Query handlers bypass the domain model and read
// straight from the database for efficient list and detail views.
package queries

import (
	"errors"
	"time"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves the deliveries visible to the acting
// identity. Users see their own requests, operators see the pending
// backlog plus deliveries they operate, admins see everything.
type GetDeliveriesQuery struct {
	viewer kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query scoped to the given identity.
func NewGetDeliveriesQuery(viewer kernel.Identity) (GetDeliveriesQuery, error) {
	if err := viewer.Validate(); err != nil {
		return GetDeliveriesQuery{}, err
	}

	return GetDeliveriesQuery{
		viewer: viewer,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Viewer returns the identity the result set is scoped to.
func (q GetDeliveriesQuery) Viewer() kernel.Identity {
	return q.viewer
}

// DeliveryResponse is the read model for a single delivery.
type DeliveryResponse struct {
	ID               kernel.UUID
	HospitalID       kernel.UUID
	VillageID        kernel.UUID
	MedicineTypeID   kernel.UUID
	RequesterID      kernel.UUID
	OperatorID       *kernel.UUID
	DroneID          *kernel.UUID
	Status           string
	Priority         string
	DistanceKm       float64
	ETAMinutes       int
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	Notes            string
	CreatedAt        time.Time
}
