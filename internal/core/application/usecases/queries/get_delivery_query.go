package queries

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery by identifier. Plain users
// may only view deliveries they requested; operators and admins may
// view any.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID
	viewer     kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the given delivery scoped to
// the acting identity.
func NewGetDeliveryQuery(deliveryID kernel.UUID, viewer kernel.Identity) (GetDeliveryQuery, error) {
	if err := errors.Join(
		deliveryID.Validate(),
		viewer.Validate(),
	); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		viewer:     viewer,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the delivery being looked up.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Viewer returns the identity performing the lookup.
func (q GetDeliveryQuery) Viewer() kernel.Identity {
	return q.viewer
}
