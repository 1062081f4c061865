package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrDeleteDroneCommandIsNotConstructed = errors.New(
	"DeleteDroneCommand must be created via NewDeleteDroneCommand constructor",
)

// DeleteDroneCommand removes a drone from the fleet pool.
type DeleteDroneCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDroneCommand creates a command to remove a drone.
func NewDeleteDroneCommand(droneID kernel.UUID) (DeleteDroneCommand, error) {
	cmd := DeleteDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDroneID(droneID); err != nil {
		return DeleteDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDroneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDroneCommandIsNotConstructed)
}

// DroneID returns the identifier of the drone to remove.
func (c DeleteDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

func (c *DeleteDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.droneID = id
	return nil
}
