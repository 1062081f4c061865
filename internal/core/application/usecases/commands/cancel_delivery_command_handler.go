package commands

import (
	"context"

	"meddrone/internal/pkg/errs"
)

// CancelDeliveryCommandHandler handles delivery cancellation. A bound
// drone goes back to the pool without a battery drain: it never flew.
type CancelDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation operations.
func NewCancelDeliveryCommandHandler(uowFactory UoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Only the requester or an administrator may cancel, and only before
// the drone takes off (pending or preparing). The drone, if bound, is
// released without drain.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	actor := cmd.Actor()
	if !actor.IsAdmin() && !aggregate.IsRequestedBy(actor.UserID()) {
		return errs.NewPermissionDeniedError("only the requester or an admin can cancel a delivery")
	}

	releaseDrone, err := aggregate.Cancel()
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

		boundDrone.ReleaseWithoutDrain()

		if err = droneRepo.Update(ctx, boundDrone); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
