package commands

import (
	"context"
)

// DeleteDroneCommandHandler handles removal of drones from the fleet
// pool.
type DeleteDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewDeleteDroneCommandHandler creates a handler for drone removal
// operations.
func NewDeleteDroneCommandHandler(uowFactory DroneUoWFactory) DeleteDroneCommandHandler {
	return DeleteDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone removal command.
// A drone that is out on a delivery cannot be removed.
func (h DeleteDroneCommandHandler) Handle(ctx context.Context, cmd DeleteDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	aggregate, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = aggregate.Decommission(); err != nil {
		return err
	}

	if err = droneRepo.Delete(ctx, cmd.DroneID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
