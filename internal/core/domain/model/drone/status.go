package drone

import (
	"fmt"

	"meddrone/internal/pkg/errs"
)

// Status represents a drone's availability in the pool.
//
// Only available drones may be allocated; delivering drones are bound to
// exactly one active delivery. Maintenance and charging are set by
// administrators and keep the drone out of the pool without binding it.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the drone is idle and allocatable.
	StatusAvailable

	// StatusDelivering means the drone is bound to an active delivery.
	StatusDelivering

	// StatusMaintenance means the drone is grounded for service.
	StatusMaintenance

	// StatusCharging means the drone is recharging and not allocatable.
	StatusCharging
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusAvailable:   "available",
		StatusDelivering:  "delivering",
		StatusMaintenance: "maintenance",
		StatusCharging:    "charging",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:   "available",
		StatusDelivering:  "delivering",
		StatusMaintenance: "maintenance",
		StatusCharging:    "charging",
	}
}

// StatusFromString parses the wire representation of a drone status
// ("available", "delivering", "maintenance", "charging").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid drone status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid drone status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
