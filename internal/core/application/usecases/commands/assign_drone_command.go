package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrAssignDroneCommandIsNotConstructed = errors.New(
	"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
)

// AssignDroneCommand triggers the assignment of an available drone to a
// pending delivery. The acting operator becomes the delivery's operator
// of record.
type AssignDroneCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates a command to assign a drone to the
// given pending delivery on behalf of the given operator.
func NewAssignDroneCommand(deliveryID, operatorID kernel.UUID) (AssignDroneCommand, error) {
	cmd := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setOperatorID(operatorID),
	); err != nil {
		return AssignDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign a drone to.
func (c AssignDroneCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OperatorID returns the operator taking charge of the delivery.
func (c AssignDroneCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c *AssignDroneCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AssignDroneCommand) setOperatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.operatorID = id
	return nil
}
