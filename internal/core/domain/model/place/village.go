package place

import (
	"errors"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

// ErrVillageIsNotConstructed is returned when a Village was created
// without using its constructor.
var ErrVillageIsNotConstructed = errs.NewValueIsRequiredErrorWithCause("village",
	errors.New("village is not constructed"))

// Village is a delivery destination. Like hospitals, coordinates are
// optional until the settlement is surveyed.
type Village struct {
	id          kernel.UUID
	name        string
	district    string
	pincode     string
	population  int
	coordinates *kernel.GeoPoint

	isConstructed bool
}

// NewVillage creates a village entry for the catalog.
func NewVillage(id kernel.UUID, name string, district string, pincode string,
	population int, coordinates *kernel.GeoPoint) (*Village, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if population < 0 {
		return nil, errs.NewValueIsInvalidError("population")
	}

	return &Village{
		id:          id,
		name:        name,
		district:    district,
		pincode:     pincode,
		population:  population,
		coordinates: coordinates,

		isConstructed: true,
	}, nil
}

// RestoreVillage reconstructs a Village from persisted state.
func RestoreVillage(id kernel.UUID, name string, district string, pincode string,
	population int, coordinates *kernel.GeoPoint) *Village {
	return &Village{
		id:          id,
		name:        name,
		district:    district,
		pincode:     pincode,
		population:  population,
		coordinates: coordinates,

		isConstructed: true,
	}
}

// Validate checks that the Village was properly constructed.
func (v *Village) Validate() error {
	if !v.isConstructed {
		return ErrVillageIsNotConstructed
	}
	return nil
}

// ID returns the village's unique identifier.
func (v *Village) ID() kernel.UUID {
	return v.id
}

// Name returns the village's display name.
func (v *Village) Name() string {
	return v.name
}

// District returns the administrative district the village belongs to.
func (v *Village) District() string {
	return v.district
}

// Pincode returns the village's postal code.
func (v *Village) Pincode() string {
	return v.pincode
}

// Population returns the village's registered population.
func (v *Village) Population() int {
	return v.population
}

// Coordinates returns the village's position, or nil when unsurveyed.
func (v *Village) Coordinates() *kernel.GeoPoint {
	return v.coordinates
}
