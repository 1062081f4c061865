package services

import (
	"errors"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

// ErrNoAvailableDrones is returned when the candidate pool contains no
// drone that can take the delivery.
var ErrNoAvailableDrones = errors.New("no available drones")

// DroneAllocator picks a drone for a pending delivery and binds the
// two together.
type DroneAllocator interface {
	Allocate(d *delivery.Delivery, operatorID kernel.UUID, drones []*drone.Drone) (*drone.Drone, error)
}

var _ DroneAllocator = &droneAllocator{}

type droneAllocator struct{}

// NewDroneAllocator creates the production allocator.
func NewDroneAllocator() DroneAllocator {
	return &droneAllocator{}
}

// Allocate picks the available drone with the highest battery level,
// breaking ties by the lower drone ID so that allocation is
// deterministic, then binds it to the delivery.
func (a *droneAllocator) Allocate(d *delivery.Delivery, operatorID kernel.UUID,
	drones []*drone.Drone) (*drone.Drone, error) {
	if d == nil {
		return nil, errs.NewValueIsRequiredError("delivery")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := operatorID.Validate(); err != nil {
		return nil, err
	}

	var best *drone.Drone
	for _, candidate := range drones {
		if candidate.Status() != drone.StatusAvailable {
			continue
		}
		if best == nil || betterCandidate(candidate, best) {
			best = candidate
		}
	}
	if best == nil {
		return nil, ErrNoAvailableDrones
	}

	if err := d.Assign(operatorID, best.ID()); err != nil {
		return nil, err
	}
	if err := best.Allocate(d.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func betterCandidate(candidate, best *drone.Drone) bool {
	if candidate.BatteryLevel() != best.BatteryLevel() {
		return candidate.BatteryLevel() > best.BatteryLevel()
	}
	return candidate.ID().String() < best.ID().String()
}
