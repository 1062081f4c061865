package commands

import (
	"errors"

	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
	"meddrone/internal/pkg/guard"
)

var ErrUpdateDroneCommandIsNotConstructed = errors.New(
	"UpdateDroneCommand must be created via NewUpdateDroneCommand constructor",
)

// UpdateDroneCommand amends a drone's attributes. Every field except
// the drone ID is optional; nil fields keep their current value. This
// is the administrative path that moves drones into maintenance or
// charging and back.
type UpdateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID      kernel.UUID
	name         *string
	model        *string
	status       *drone.Status
	batteryLevel *int
	maxPayloadKg *float64
	maxRangeKm   *float64

	guard guard.ConstructorGuard
}

// NewUpdateDroneCommand creates a command to amend a drone. At least
// one field must be set; per-field validation happens on the aggregate.
func NewUpdateDroneCommand(droneID kernel.UUID, name *string, model *string,
	status *drone.Status, batteryLevel *int, maxPayloadKg *float64,
	maxRangeKm *float64) (UpdateDroneCommand, error) {
	cmd := UpdateDroneCommand{
		name:         name,
		model:        model,
		status:       status,
		batteryLevel: batteryLevel,
		maxPayloadKg: maxPayloadKg,
		maxRangeKm:   maxRangeKm,

		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDroneID(droneID); err != nil {
		return UpdateDroneCommand{}, err
	}

	if name == nil && model == nil && status == nil && batteryLevel == nil &&
		maxPayloadKg == nil && maxRangeKm == nil {
		return UpdateDroneCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDroneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDroneCommandIsNotConstructed)
}

// DroneID returns the identifier of the drone to amend.
func (c UpdateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Name returns the new call sign, or nil to keep the current one.
func (c UpdateDroneCommand) Name() *string {
	return c.name
}

// Model returns the new model designation, or nil to keep the current one.
func (c UpdateDroneCommand) Model() *string {
	return c.model
}

// Status returns the new pool status, or nil to keep the current one.
func (c UpdateDroneCommand) Status() *drone.Status {
	return c.status
}

// BatteryLevel returns the new battery charge, or nil to keep the current one.
func (c UpdateDroneCommand) BatteryLevel() *int {
	return c.batteryLevel
}

// MaxPayloadKg returns the new payload capacity, or nil to keep the current one.
func (c UpdateDroneCommand) MaxPayloadKg() *float64 {
	return c.maxPayloadKg
}

// MaxRangeKm returns the new flight range, or nil to keep the current one.
func (c UpdateDroneCommand) MaxRangeKm() *float64 {
	return c.maxRangeKm
}

func (c *UpdateDroneCommand) setDroneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.droneID = id
	return nil
}
