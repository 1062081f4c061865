package commands

import (
	"context"
	"time"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/services"
	"meddrone/internal/core/ports"
	"meddrone/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// creation. Resolves the route from the place catalog, estimates the
// arrival time, and persists the delivery in pending status.
type CreateDeliveryCommandHandler struct {
	uowFactory   DeliveryUoWFactory
	placeCatalog ports.PlaceCatalog
	routePlanner services.RoutePlanner
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation
// operations.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory,
	placeCatalog ports.PlaceCatalog, routePlanner services.RoutePlanner) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory:   uowFactory,
		placeCatalog: placeCatalog,
		routePlanner: routePlanner,
	}
}

// Handle processes the delivery creation command.
// Looks up both endpoints and the medicine type, plans the route, and
// creates the delivery in pending status within a transaction.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hospital, err := h.placeCatalog.GetHospital(ctx, cmd.HospitalID())
	if err != nil {
		return err
	}

	village, err := h.placeCatalog.GetVillage(ctx, cmd.VillageID())
	if err != nil {
		return err
	}

	exists, err := h.placeCatalog.MedicineTypeExists(ctx, cmd.MedicineTypeID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("medicineTypeId", cmd.MedicineTypeID())
	}

	route, err := h.routePlanner.Plan(hospital, village, time.Now())
	if err != nil {
		return err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.HospitalID(),
		cmd.VillageID(),
		cmd.MedicineTypeID(),
		cmd.RequesterID(),
		cmd.Priority(),
		cmd.Notes(),
		route.DistanceKm,
		route.ETAMinutes,
		route.EstimatedArrival,
	)
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

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
