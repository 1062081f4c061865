package drone

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

const (
	// BatteryMin and BatteryMax bound the battery charge percentage.
	BatteryMin = 0
	BatteryMax = 100

	// BatteryFloorAfterDrain is the lowest battery level a post-flight
	// drain can leave a drone at. Drones never come back from a run
	// reporting less than this.
	BatteryFloorAfterDrain = 10
)

// ErrDroneIsNotConstructed is returned when a Drone was created
// without using its constructor.
var ErrDroneIsNotConstructed = errs.NewValueIsRequiredErrorWithCause("drone",
	errors.New("drone is not constructed"))

// Drone is the aggregate root for a delivery drone in the fleet pool.
type Drone struct {
	id              kernel.UUID
	name            string
	model           string
	status          Status
	batteryLevel    int
	maxPayloadKg    float64
	maxRangeKm      float64
	currentDelivery *kernel.UUID

	isConstructed bool
}

// NewDrone creates a new available drone with a full set of attributes.
func NewDrone(id kernel.UUID, name string, model string, batteryLevel int,
	maxPayloadKg float64, maxRangeKm float64) (*Drone, error) {
	d := &Drone{
		isConstructed: true,
	}

	err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setModel(model),
		d.setBatteryLevel(batteryLevel),
		d.setMaxPayloadKg(maxPayloadKg),
		d.setMaxRangeKm(maxRangeKm),
		d.setStatus(StatusAvailable),
	)
	if err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone reconstructs a Drone from persisted state without
// re-running business rules.
func RestoreDrone(id kernel.UUID, name string, model string, status Status,
	batteryLevel int, maxPayloadKg float64, maxRangeKm float64,
	currentDelivery *kernel.UUID) *Drone {
	return &Drone{
		id:              id,
		name:            name,
		model:           model,
		status:          status,
		batteryLevel:    batteryLevel,
		maxPayloadKg:    maxPayloadKg,
		maxRangeKm:      maxRangeKm,
		currentDelivery: currentDelivery,

		isConstructed: true,
	}
}

// Validate checks that the Drone was properly constructed.
func (d *Drone) Validate() error {
	if !d.isConstructed {
		return ErrDroneIsNotConstructed
	}
	return nil
}

// IsEqual compares two drones by identity.
func (d *Drone) IsEqual(other *Drone) bool {
	return d.id.IsEqual(other.id)
}

// ID returns the drone's unique identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// Name returns the drone's call sign.
func (d *Drone) Name() string {
	return d.name
}

// Model returns the drone's hardware model designation.
func (d *Drone) Model() string {
	return d.model
}

// Status returns the drone's pool status.
func (d *Drone) Status() Status {
	return d.status
}

// BatteryLevel returns the battery charge percentage.
func (d *Drone) BatteryLevel() int {
	return d.batteryLevel
}

// MaxPayloadKg returns the maximum payload the drone can carry.
func (d *Drone) MaxPayloadKg() float64 {
	return d.maxPayloadKg
}

// MaxRangeKm returns the drone's maximum flight range.
func (d *Drone) MaxRangeKm() float64 {
	return d.maxRangeKm
}

// CurrentDelivery returns the delivery the drone is bound to, or nil
// when idle.
func (d *Drone) CurrentDelivery() *kernel.UUID {
	return d.currentDelivery
}

// Allocate binds the drone to a delivery and marks it delivering.
// Only available drones can be allocated.
func (d *Drone) Allocate(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if d.status != StatusAvailable {
		return errs.NewStateConflictError(
			"drone " + d.id.String() + " is " + d.status.String() + ", not available")
	}

	d.status = StatusDelivering
	d.currentDelivery = &deliveryID
	return nil
}

// Release returns the drone to the pool, draining the battery by the
// given amount but never below BatteryFloorAfterDrain. Releasing an
// already available drone is a no-op, which keeps the operation safe to
// retry and lets the reconciliation job run without double-draining.
func (d *Drone) Release(drain int) {
	if d.status == StatusAvailable {
		return
	}

	d.batteryLevel -= drain
	if d.batteryLevel < BatteryFloorAfterDrain {
		d.batteryLevel = BatteryFloorAfterDrain
	}
	d.status = StatusAvailable
	d.currentDelivery = nil
}

// ReleaseWithoutDrain returns the drone to the pool keeping its battery
// level. Used when a delivery is cancelled before the drone flies.
func (d *Drone) ReleaseWithoutDrain() {
	if d.status == StatusAvailable {
		return
	}

	d.status = StatusAvailable
	d.currentDelivery = nil
}

// SetStatus moves the drone to an administrator-chosen status
// (maintenance, charging, available). Delivering drones must be
// released through their delivery first.
func (d *Drone) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if d.status == StatusDelivering && status != StatusAvailable {
		return errs.NewStateConflictError(
			"drone " + d.id.String() + " is delivering and cannot be grounded")
	}

	d.status = status
	if status != StatusDelivering {
		d.currentDelivery = nil
	}
	return nil
}

// Rename changes the drone's call sign. The name stays required.
func (d *Drone) Rename(name string) error {
	return d.setName(name)
}

// SetModel changes the hardware model designation.
func (d *Drone) SetModel(model string) error {
	return d.setModel(model)
}

// SetBatteryLevel overrides the battery charge, e.g. after a manual
// swap or recharge.
func (d *Drone) SetBatteryLevel(level int) error {
	return d.setBatteryLevel(level)
}

// SetMaxPayloadKg changes the payload capacity.
func (d *Drone) SetMaxPayloadKg(payload float64) error {
	return d.setMaxPayloadKg(payload)
}

// SetMaxRangeKm changes the flight range.
func (d *Drone) SetMaxRangeKm(rangeKm float64) error {
	return d.setMaxRangeKm(rangeKm)
}

// Decommission checks the drone can be removed from the fleet.
// Delivering drones must finish or be released first.
func (d *Drone) Decommission() error {
	if d.status == StatusDelivering {
		return errs.NewStateConflictError(
			"drone " + d.id.String() + " is delivering and cannot be removed")
	}
	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Drone) setModel(model string) error {
	d.model = model
	return nil
}

func (d *Drone) setBatteryLevel(level int) error {
	if level < BatteryMin || level > BatteryMax {
		return errs.NewValueIsOutOfRangeError("batteryLevel", level, BatteryMin, BatteryMax)
	}
	d.batteryLevel = level
	return nil
}

func (d *Drone) setMaxPayloadKg(payload float64) error {
	if payload <= 0 {
		return errs.NewValueIsInvalidError("maxPayloadKg")
	}
	d.maxPayloadKg = payload
	return nil
}

func (d *Drone) setMaxRangeKm(rangeKm float64) error {
	if rangeKm <= 0 {
		return errs.NewValueIsInvalidError("maxRangeKm")
	}
	d.maxRangeKm = rangeKm
	return nil
}

func (d *Drone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
