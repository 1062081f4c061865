// Package placerepo provides the read-only place catalog backed by
// postgres: hospitals, villages, and the medicine type registry.
package placerepo

import (
	"github.com/google/uuid"

	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/core/domain/model/place"
)

// HospitalDTO represents the database structure for hospitals.
// Latitude and longitude are nullable: unsurveyed facilities have no
// coordinates yet.
type HospitalDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Pincode   string
	Latitude  *float64
	Longitude *float64
}

// TableName specifies the database table name for hospitals.
func (HospitalDTO) TableName() string {
	return "hospitals"
}

// VillageDTO represents the database structure for villages.
type VillageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	District   string
	Pincode    string
	Population int
	Latitude   *float64
	Longitude  *float64
}

// TableName specifies the database table name for villages.
func (VillageDTO) TableName() string {
	return "villages"
}

// MedicineTypeDTO represents the database structure for medicine types.
type MedicineTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
}

// TableName specifies the database table name for medicine types.
func (MedicineTypeDTO) TableName() string {
	return "medicine_types"
}

func hospitalToDomain(dto HospitalDTO) (*place.Hospital, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coords, err := optionalGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return place.RestoreHospital(id, dto.Name, dto.Pincode, coords), nil
}

func villageToDomain(dto VillageDTO) (*place.Village, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coords, err := optionalGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return place.RestoreVillage(id, dto.Name, dto.District, dto.Pincode, dto.Population, coords), nil
}

func optionalGeoPoint(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil //nolint:nilnil //nil means the place is unsurveyed
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
