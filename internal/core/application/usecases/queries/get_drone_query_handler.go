package queries

import (
	"context"

	"gorm.io/gorm"

	"meddrone/internal/pkg/errs"
)

// GetDroneQueryHandler retrieves a single fleet drone by identifier.
type GetDroneQueryHandler struct {
	db *gorm.DB
}

// NewGetDroneQueryHandler creates a handler for single drone lookups.
func NewGetDroneQueryHandler(db *gorm.DB) GetDroneQueryHandler {
	return GetDroneQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when the drone does not exist.
func (h GetDroneQueryHandler) Handle(
	ctx context.Context,
	query GetDroneQuery,
) (DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return DroneResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			model,
			status,
			battery_level,
			max_payload_kg,
			max_range_km,
			current_delivery_id
		FROM drones
		WHERE id = ?
	`, query.DroneID().Bytes()).Rows()
	if err != nil {
		return DroneResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DroneResponse{}, err
		}
		return DroneResponse{}, errs.NewObjectNotFoundError("droneId", query.DroneID())
	}

	var resp DroneResponse
	var id uuidScan
	var currentDelivery nullUUIDScan

	err = rows.Scan(
		&id.value,
		&resp.Name,
		&resp.Model,
		&resp.Status,
		&resp.BatteryLevel,
		&resp.MaxPayloadKg,
		&resp.MaxRangeKm,
		&currentDelivery.value,
	)
	if err != nil {
		return DroneResponse{}, err
	}

	if resp.ID, err = id.toUUID(); err != nil {
		return DroneResponse{}, err
	}
	if resp.CurrentDeliveryID, err = currentDelivery.toUUID(); err != nil {
		return DroneResponse{}, err
	}

	return resp, nil
}
