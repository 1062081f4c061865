// Package dronerepo provides data transfer objects and mapping
// functions for drone persistence.
package dronerepo

import (
	"time"

	"github.com/google/uuid"

	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
)

// DroneDTO represents the database structure for persisting drone
// aggregates.
type DroneDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string
	Model             string
	Status            string `gorm:"index"`
	BatteryLevel      int
	MaxPayloadKg      float64
	MaxRangeKm        float64
	CurrentDeliveryID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for drone entities.
func (DroneDTO) TableName() string {
	return "drones"
}

// fromDomain converts a drone domain aggregate to its database
// representation.
func fromDomain(aggregate *drone.Drone) DroneDTO {
	var currentDeliveryID *uuid.UUID
	if id := aggregate.CurrentDelivery(); id != nil {
		raw := id.Bytes()
		currentDeliveryID = &raw
	}

	return DroneDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Model:             aggregate.Model(),
		Status:            aggregate.Status().String(),
		BatteryLevel:      aggregate.BatteryLevel(),
		MaxPayloadKg:      aggregate.MaxPayloadKg(),
		MaxRangeKm:        aggregate.MaxRangeKm(),
		CurrentDeliveryID: currentDeliveryID,
	}
}

// toDomain converts a database DTO to a drone domain aggregate.
func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := drone.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentDelivery *kernel.UUID
	if dto.CurrentDeliveryID != nil {
		deliveryID, deliveryErr := kernel.UUIDFromBytes((*dto.CurrentDeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		currentDelivery = &deliveryID
	}

	return drone.RestoreDrone(id, dto.Name, dto.Model, status, dto.BatteryLevel,
		dto.MaxPayloadKg, dto.MaxRangeKm, currentDelivery), nil
}
