package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to create a new medicine
// delivery from a hospital to a village. The requester comes from the
// authenticated identity, never from the request body.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	hospitalID     kernel.UUID
	villageID      kernel.UUID
	medicineTypeID kernel.UUID
	requesterID    kernel.UUID
	priority       delivery.Priority
	notes          string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates all identifiers and the priority. Returns an error if any
// validation fails.
func NewCreateDeliveryCommand(deliveryID, hospitalID, villageID, medicineTypeID,
	requesterID kernel.UUID, priority delivery.Priority, notes string) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setHospitalID(hospitalID),
		cmd.setVillageID(villageID),
		cmd.setMedicineTypeID(medicineTypeID),
		cmd.setRequesterID(requesterID),
		cmd.setPriority(priority),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// HospitalID returns the dispatch origin.
func (c CreateDeliveryCommand) HospitalID() kernel.UUID {
	return c.hospitalID
}

// VillageID returns the destination.
func (c CreateDeliveryCommand) VillageID() kernel.UUID {
	return c.villageID
}

// MedicineTypeID returns the requested medicine type.
func (c CreateDeliveryCommand) MedicineTypeID() kernel.UUID {
	return c.medicineTypeID
}

// RequesterID returns the authenticated user creating the delivery.
func (c CreateDeliveryCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// Priority returns the delivery priority.
func (c CreateDeliveryCommand) Priority() delivery.Priority {
	return c.priority
}

// Notes returns free-form notes for the operator.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setHospitalID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.hospitalID = id
	return nil
}

func (c *CreateDeliveryCommand) setVillageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.villageID = id
	return nil
}

func (c *CreateDeliveryCommand) setMedicineTypeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.medicineTypeID = id
	return nil
}

func (c *CreateDeliveryCommand) setRequesterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.requesterID = id
	return nil
}

func (c *CreateDeliveryCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
