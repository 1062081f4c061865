package placerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/core/domain/model/place"
	"meddrone/internal/pkg/errs"
)

// GormPlaceCatalog implements PlaceCatalog using GORM. The catalog is
// read-only from the delivery workflow's point of view, so it runs on
// the shared connection rather than a unit of work.
type GormPlaceCatalog struct {
	db *gorm.DB
}

// NewGormPlaceCatalog creates a new GORM place catalog.
func NewGormPlaceCatalog(db *gorm.DB) *GormPlaceCatalog {
	return &GormPlaceCatalog{db: db}
}

// GetHospital retrieves a hospital by ID.
func (c *GormPlaceCatalog) GetHospital(ctx context.Context, id kernel.UUID) (*place.Hospital, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HospitalDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hospital", id.String())
		}
		return nil, err
	}

	return hospitalToDomain(dto)
}

// GetVillage retrieves a village by ID.
func (c *GormPlaceCatalog) GetVillage(ctx context.Context, id kernel.UUID) (*place.Village, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VillageDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("village", id.String())
		}
		return nil, err
	}

	return villageToDomain(dto)
}

// MedicineTypeExists reports whether the medicine type is registered.
func (c *GormPlaceCatalog) MedicineTypeExists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := c.db.WithContext(ctx).
		Model(&MedicineTypeDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
