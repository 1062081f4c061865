package place

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

// ErrHospitalIsNotConstructed is returned when a Hospital was created
// without using its constructor.
var ErrHospitalIsNotConstructed = errs.NewValueIsRequiredErrorWithCause("hospital",
	errors.New("hospital is not constructed"))

// Hospital is a dispatch origin for medicine deliveries. Coordinates
// are optional: rural facilities are sometimes registered before they
// are surveyed.
type Hospital struct {
	id          kernel.UUID
	name        string
	pincode     string
	coordinates *kernel.GeoPoint

	isConstructed bool
}

// NewHospital creates a hospital entry for the catalog.
func NewHospital(id kernel.UUID, name string, pincode string, coordinates *kernel.GeoPoint) (*Hospital, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Hospital{
		id:          id,
		name:        name,
		pincode:     pincode,
		coordinates: coordinates,

		isConstructed: true,
	}, nil
}

// RestoreHospital reconstructs a Hospital from persisted state.
func RestoreHospital(id kernel.UUID, name string, pincode string, coordinates *kernel.GeoPoint) *Hospital {
	return &Hospital{
		id:          id,
		name:        name,
		pincode:     pincode,
		coordinates: coordinates,

		isConstructed: true,
	}
}

// Validate checks that the Hospital was properly constructed.
func (h *Hospital) Validate() error {
	if !h.isConstructed {
		return ErrHospitalIsNotConstructed
	}
	return nil
}

// ID returns the hospital's unique identifier.
func (h *Hospital) ID() kernel.UUID {
	return h.id
}

// Name returns the hospital's display name.
func (h *Hospital) Name() string {
	return h.name
}

// Pincode returns the hospital's postal code.
func (h *Hospital) Pincode() string {
	return h.pincode
}

// Coordinates returns the hospital's position, or nil when unsurveyed.
func (h *Hospital) Coordinates() *kernel.GeoPoint {
	return h.coordinates
}
