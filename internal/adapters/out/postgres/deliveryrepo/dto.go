// Package deliveryrepo provides data transfer objects and mapping
// functions for delivery persistence. Implements the repository pattern
// for the delivery aggregate, converting between domain entities and
// database rows.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Status and priority are stored as their wire strings so
// the read-side queries can filter on them directly.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HospitalID       uuid.UUID  `gorm:"type:uuid;index"`
	VillageID        uuid.UUID  `gorm:"type:uuid"`
	MedicineTypeID   uuid.UUID  `gorm:"type:uuid"`
	RequesterID      uuid.UUID  `gorm:"type:uuid;index"`
	OperatorID       *uuid.UUID `gorm:"type:uuid;index"`
	DroneID          *uuid.UUID `gorm:"type:uuid;index"`
	Status           string     `gorm:"index"`
	Priority         string
	DistanceKm       float64
	EtaMinutes       int
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	Notes            string
	CreatedAt        time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database
// representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var operatorID, droneID *uuid.UUID
	if id := aggregate.OperatorID(); id != nil {
		raw := id.Bytes()
		operatorID = &raw
	}
	if id := aggregate.DroneID(); id != nil {
		raw := id.Bytes()
		droneID = &raw
	}

	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		HospitalID:       aggregate.HospitalID().Bytes(),
		VillageID:        aggregate.VillageID().Bytes(),
		MedicineTypeID:   aggregate.MedicineTypeID().Bytes(),
		RequesterID:      aggregate.RequesterID().Bytes(),
		OperatorID:       operatorID,
		DroneID:          droneID,
		Status:           aggregate.Status().String(),
		Priority:         aggregate.Priority().String(),
		DistanceKm:       aggregate.DistanceKm(),
		EtaMinutes:       aggregate.ETAMinutes(),
		EstimatedArrival: aggregate.EstimatedArrival(),
		ActualArrival:    aggregate.ActualArrival(),
		Notes:            aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	hospitalID, err := kernel.UUIDFromBytes(dto.HospitalID[:])
	if err != nil {
		return nil, err
	}
	villageID, err := kernel.UUIDFromBytes(dto.VillageID[:])
	if err != nil {
		return nil, err
	}
	medicineTypeID, err := kernel.UUIDFromBytes(dto.MedicineTypeID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := optionalUUID(dto.OperatorID)
	if err != nil {
		return nil, err
	}
	droneID, err := optionalUUID(dto.DroneID)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := delivery.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		hospitalID,
		villageID,
		medicineTypeID,
		requesterID,
		operatorID,
		droneID,
		status,
		priority,
		dto.Notes,
		dto.DistanceKm,
		dto.EtaMinutes,
		dto.EstimatedArrival,
		dto.ActualArrival,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //nil means the column is NULL
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
