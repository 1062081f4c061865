package ports

import (
	"context"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/core/domain/model/place"
)

// PlaceCatalog is the read-only lookup for the hospitals and villages
// deliveries refer to. The catalog is maintained out of band; the
// delivery workflow only needs to resolve identifiers and coordinates.
type PlaceCatalog interface {
	// GetHospital retrieves a hospital by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such hospital exists.
	GetHospital(ctx context.Context, id kernel.UUID) (*place.Hospital, error)

	// GetVillage retrieves a village by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such village exists.
	GetVillage(ctx context.Context, id kernel.UUID) (*place.Village, error)

	// MedicineTypeExists reports whether the given medicine type is
	// registered in the catalog.
	MedicineTypeExists(ctx context.Context, id kernel.UUID) (bool, error)
}
