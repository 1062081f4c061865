package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrAdvanceDeliveryStatusCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryStatusCommand must be created via NewAdvanceDeliveryStatusCommand constructor",
)

// AdvanceDeliveryStatusCommand moves a delivery to a new lifecycle
// status. Moving into a terminal status releases the bound drone back
// to the pool with a battery drain for the completed flight.
type AdvanceDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryStatusCommand creates a command to move the given
// delivery to the target status. Pending is not a valid target: a
// delivery only starts there.
func NewAdvanceDeliveryStatusCommand(deliveryID kernel.UUID, target delivery.Status) (AdvanceDeliveryStatusCommand, error) {
	cmd := AdvanceDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being advanced.
func (c AdvanceDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Target returns the status to move the delivery to.
func (c AdvanceDeliveryStatusCommand) Target() delivery.Status {
	return c.target
}

func (c *AdvanceDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AdvanceDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
