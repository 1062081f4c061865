package commands

import (
	"context"
	"math/rand/v2"
	"time"
)

const (
	// flightDrainMin and flightDrainMax bound the simulated battery
	// cost of a completed flight.
	flightDrainMin = 5
	flightDrainMax = 15
)

// AdvanceDeliveryStatusCommandHandler handles delivery lifecycle
// transitions. When the delivery reaches a terminal status the bound
// drone is released back to the pool with a randomized battery drain,
// all within one transaction.
type AdvanceDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceDeliveryStatusCommandHandler creates a handler for delivery
// status transitions.
func NewAdvanceDeliveryStatusCommandHandler(uowFactory UoWFactory) AdvanceDeliveryStatusCommandHandler {
	return AdvanceDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Terminal transitions (delivered, cancelled, failed) release the drone
// with a flight drain. The release is idempotent on the drone side, so
// a retried command cannot drain twice.
func (h AdvanceDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	droneRepo := uow.DroneRepository()

	aggregate, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	releaseDrone, err := aggregate.AdvanceTo(cmd.Target(), time.Now())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if releaseDrone {
		boundDrone, err := droneRepo.Get(ctx, *aggregate.DroneID())
		if err != nil {
			return err
		}

		boundDrone.Release(flightDrain())

		if err = droneRepo.Update(ctx, boundDrone); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func flightDrain() int {
	return flightDrainMin + rand.IntN(flightDrainMax-flightDrainMin+1)
}
