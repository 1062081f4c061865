package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllDronesQueryHandler lists the whole fleet for administrators.
// Drones with the most charge come first so the dashboard mirrors the
// allocator's preference order.
type GetAllDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDronesQueryHandler creates a handler for fleet list queries.
func NewGetAllDronesQueryHandler(db *gorm.DB) GetAllDronesQueryHandler {
	return GetAllDronesQueryHandler{db: db}
}

// Handle executes the fleet list query.
func (h GetAllDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDronesQuery,
) ([]DroneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY battery_level DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drones := make([]DroneResponse, 0)
	for rows.Next() {
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
			return nil, err
		}

		if resp.ID, err = id.toUUID(); err != nil {
			return nil, err
		}
		if resp.CurrentDeliveryID, err = currentDelivery.toUUID(); err != nil {
			return nil, err
		}

		drones = append(drones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
