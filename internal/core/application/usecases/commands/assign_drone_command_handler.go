package commands

import (
	"context"
	"errors"

	"meddrone/internal/core/domain/services"
	"meddrone/internal/pkg/errs"
)

// AssignDroneCommandHandler orchestrates the drone assignment process.
// Loads the pending delivery, locks the available drones, and lets the
// allocator pick the best candidate. Both aggregates are updated within
// a single transaction so a drone can never be double-booked.
type AssignDroneCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.DroneAllocator
}

// NewAssignDroneCommandHandler creates a handler for drone assignment
// operations.
func NewAssignDroneCommandHandler(uowFactory UoWFactory, allocator services.DroneAllocator) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the drone assignment command.
// The delivery is read under a row lock, so two assignments racing on
// the same delivery serialize and the loser observes status=preparing
// and fails with a conflict. The available-drone read locks the
// candidate rows, so concurrent assignments serialize on the pool and
// each drone is handed out once. Returns errs.ErrResourceExhausted
// when the pool is empty.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, cmd AssignDroneCommand) error {
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

	drones, err := droneRepo.GetAllAvailableForUpdate(ctx)
	if err != nil {
		return err
	}

	assigned, err := h.allocator.Allocate(aggregate, cmd.OperatorID(), drones)
	if errors.Is(err, services.ErrNoAvailableDrones) {
		return errs.NewResourceExhaustedErrorWithCause("no available drones", err)
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = droneRepo.Update(ctx, assigned); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
