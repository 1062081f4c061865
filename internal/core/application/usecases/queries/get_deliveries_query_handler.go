package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/kernel"
)

const deliveryColumns = `
	id,
	hospital_id,
	village_id,
	medicine_type_id,
	requester_id,
	operator_id,
	drone_id,
	status,
	priority,
	distance_km,
	eta_minutes,
	estimated_arrival,
	actual_arrival,
	notes,
	created_at
`

// GetDeliveriesQueryHandler lists deliveries with role-based scoping.
// Reads the deliveries table directly; the newest requests come first.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery list
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the scoped list query.
// Users get their own deliveries, operators get the pending backlog
// plus deliveries assigned to them, admins get everything. Results are
// ordered by creation time, newest first.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	viewer := query.Viewer()

	var (
		rows *sql.Rows
		err  error
	)

	switch {
	case viewer.IsAdmin():
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			ORDER BY created_at DESC
		`).Rows()
	case viewer.IsOperator():
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE status = ? OR operator_id = ?
			ORDER BY created_at DESC
		`, delivery.StatusPending.String(), viewer.UserID().Bytes()).Rows()
	default:
		rows, err = h.db.WithContext(ctx).Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE requester_id = ?
			ORDER BY created_at DESC
		`, viewer.UserID().Bytes()).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var resp DeliveryResponse
	var id, hospitalID, villageID, medicineID, requester uuidScan
	var operatorID, droneID nullUUIDScan
	var estimatedArrival, actualArrival sql.NullTime

	err := rows.Scan(
		&id.value,
		&hospitalID.value,
		&villageID.value,
		&medicineID.value,
		&requester.value,
		&operatorID.value,
		&droneID.value,
		&resp.Status,
		&resp.Priority,
		&resp.DistanceKm,
		&resp.ETAMinutes,
		&estimatedArrival,
		&actualArrival,
		&resp.Notes,
		&resp.CreatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if resp.ID, err = id.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.HospitalID, err = hospitalID.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.VillageID, err = villageID.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.MedicineTypeID, err = medicineID.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.RequesterID, err = requester.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.OperatorID, err = operatorID.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.DroneID, err = droneID.toUUID(); err != nil {
		return DeliveryResponse{}, err
	}

	if estimatedArrival.Valid {
		resp.EstimatedArrival = &estimatedArrival.Time
	}
	if actualArrival.Valid {
		resp.ActualArrival = &actualArrival.Time
	}

	return resp, nil
}

type uuidScan struct {
	value string
}

func (s uuidScan) toUUID() (kernel.UUID, error) {
	return kernel.UUIDFromString(s.value)
}

type nullUUIDScan struct {
	value sql.NullString
}

func (s nullUUIDScan) toUUID() (*kernel.UUID, error) {
	if !s.value.Valid {
		return nil, nil //nolint:nilnil //nil means the column is NULL
	}

	id, err := kernel.UUIDFromString(s.value.String)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
