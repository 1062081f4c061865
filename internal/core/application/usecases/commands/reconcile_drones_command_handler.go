package commands

import (
	"context"
)

// ReconcileDronesCommandHandler releases drones that are marked
// delivering while no active delivery holds them. This is the crash
// recovery path: assignment and release write two aggregates, and a
// process death between the delivery write and the drone write leaves
// a stray.
type ReconcileDronesCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileDronesCommandHandler creates a handler for fleet
// reconciliation sweeps.
func NewReconcileDronesCommandHandler(uowFactory UoWFactory) ReconcileDronesCommandHandler {
	return ReconcileDronesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation sweep.
// A delivering drone is a stray when no non-terminal delivery
// references it. Strays are released without battery drain since the
// flight accounting already happened (or never will). Returns the
// number of drones released.
func (h ReconcileDronesCommandHandler) Handle(ctx context.Context, cmd ReconcileDronesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivering, err := uow.DroneRepository().GetAllDelivering(ctx)
	if err != nil {
		return 0, err
	}
	if len(delivering) == 0 {
		return 0, uow.Commit(ctx)
	}

	active, err := uow.DeliveryRepository().GetAllActiveWithDrone(ctx)
	if err != nil {
		return 0, err
	}

	busy := make(map[string]struct{}, len(active))
	for _, d := range active {
		if d.DroneID() != nil {
			busy[d.DroneID().String()] = struct{}{}
		}
	}

	released := 0
	for _, stray := range delivering {
		if _, ok := busy[stray.ID().String()]; ok {
			continue
		}

		stray.ReleaseWithoutDrain()
		if err = uow.DroneRepository().Update(ctx, stray); err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
