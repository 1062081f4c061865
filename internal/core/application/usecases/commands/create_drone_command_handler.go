package commands

import (
	"context"

	"meddrone/internal/core/domain/model/drone"
)

// CreateDroneCommandHandler handles drone registration for the fleet
// pool.
type CreateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewCreateDroneCommandHandler creates a handler for drone registration
// operations.
func NewCreateDroneCommandHandler(uowFactory DroneUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone registration command.
// The new drone enters the pool in available status.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := drone.NewDrone(cmd.DroneID(), cmd.Name(), cmd.Model(),
		cmd.BatteryLevel(), cmd.MaxPayloadKg(), cmd.MaxRangeKm())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DroneRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
