package queries

import (
	"context"

	"gorm.io/gorm"

	"meddrone/internal/pkg/errs"
)

// GetDeliveryQueryHandler retrieves a single delivery by identifier
// with the viewer's access checked against the stored requester.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery
// lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when the delivery does not exist and
// errs.PermissionDeniedError when a plain user asks for someone else's
// delivery.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID())
	}

	resp, err := scanDeliveryRow(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	viewer := query.Viewer()
	if viewer.IsUser() && !resp.RequesterID.IsEqual(viewer.UserID()) {
		return DeliveryResponse{}, errs.NewPermissionDeniedError("delivery belongs to another requester")
	}

	return resp, nil
}
