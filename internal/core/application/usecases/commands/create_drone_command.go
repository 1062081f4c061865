package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
	"meddrone/internal/pkg/guard"
)

var ErrCreateDroneCommandIsNotConstructed = errors.New(
	"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
)

// CreateDroneCommand registers a new drone in the fleet pool. New
// drones start available with the reported battery level.
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID      kernel.UUID
	name         string
	model        string
	batteryLevel int
	maxPayloadKg float64
	maxRangeKm   float64

	guard guard.ConstructorGuard
}

// NewCreateDroneCommand creates a command to register a new drone.
// Validates that the drone ID is valid and the name is not empty; the
// remaining attributes are validated by the aggregate constructor.
func NewCreateDroneCommand(droneID kernel.UUID, name string, model string,
	batteryLevel int, maxPayloadKg float64, maxRangeKm float64) (CreateDroneCommand, error) {
	cmd := CreateDroneCommand{
		model:        model,
		batteryLevel: batteryLevel,
		maxPayloadKg: maxPayloadKg,
		maxRangeKm:   maxRangeKm,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDroneID(droneID),
		cmd.setName(name),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

// DroneID returns the unique identifier for the new drone.
func (c CreateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Name returns the drone's call sign.
func (c CreateDroneCommand) Name() string {
	return c.name
}

// Model returns the drone's hardware model designation.
func (c CreateDroneCommand) Model() string {
	return c.model
}

// BatteryLevel returns the reported battery charge percentage.
func (c CreateDroneCommand) BatteryLevel() int {
	return c.batteryLevel
}

// MaxPayloadKg returns the maximum payload the drone can carry.
func (c CreateDroneCommand) MaxPayloadKg() float64 {
	return c.maxPayloadKg
}

// MaxRangeKm returns the drone's maximum flight range.
func (c CreateDroneCommand) MaxRangeKm() float64 {
	return c.maxRangeKm
}

func (c *CreateDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.droneID = id
	return nil
}

func (c *CreateDroneCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
