package commands

import (
	"context"
	"errors"
)

// UpdateDroneCommandHandler handles administrative drone amendments:
// grounding for maintenance or charging, battery overrides, and
// attribute changes.
type UpdateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewUpdateDroneCommandHandler creates a handler for drone amendment
// operations.
func NewUpdateDroneCommandHandler(uowFactory DroneUoWFactory) UpdateDroneCommandHandler {
	return UpdateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the drone amendment command.
// Only the fields present on the command change; a delivering drone
// cannot be grounded, which the aggregate enforces.
func (h UpdateDroneCommandHandler) Handle(ctx context.Context, cmd UpdateDroneCommand) error {
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

	var amend []error
	if cmd.Name() != nil {
		amend = append(amend, aggregate.Rename(*cmd.Name()))
	}
	if cmd.Model() != nil {
		amend = append(amend, aggregate.SetModel(*cmd.Model()))
	}
	if cmd.Status() != nil {
		amend = append(amend, aggregate.SetStatus(*cmd.Status()))
	}
	if cmd.BatteryLevel() != nil {
		amend = append(amend, aggregate.SetBatteryLevel(*cmd.BatteryLevel()))
	}
	if cmd.MaxPayloadKg() != nil {
		amend = append(amend, aggregate.SetMaxPayloadKg(*cmd.MaxPayloadKg()))
	}
	if cmd.MaxRangeKm() != nil {
		amend = append(amend, aggregate.SetMaxRangeKm(*cmd.MaxRangeKm()))
	}
	if err = errors.Join(amend...); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
