package http

import (
	"time"

	"meddrone/internal/core/application/usecases/queries"
)

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the JSON body for POST /api/deliveries.
// The requester is taken from the access token, not from the body.
type CreateDeliveryRequest struct {
	HospitalID     string `json:"hospitalId"`
	VillageID      string `json:"villageId"`
	MedicineTypeID string `json:"medicineTypeId"`
	Priority       string `json:"priority,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateDeliveryStatusRequest is the JSON body for
// PATCH /api/deliveries/:id/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// CreateDroneRequest is the JSON body for POST /api/admin/drones.
type CreateDroneRequest struct {
	Name         string  `json:"name"`
	Model        string  `json:"model,omitempty"`
	BatteryLevel *int    `json:"batteryLevel,omitempty"`
	MaxPayloadKg float64 `json:"maxPayloadKg,omitempty"`
	MaxRangeKm   float64 `json:"maxRangeKm,omitempty"`
}

// UpdateDroneRequest is the JSON body for PUT /api/admin/drones/:id.
// Absent fields keep their current value.
type UpdateDroneRequest struct {
	Name         *string  `json:"name,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Status       *string  `json:"status,omitempty"`
	BatteryLevel *int     `json:"batteryLevel,omitempty"`
	MaxPayloadKg *float64 `json:"maxPayloadKg,omitempty"`
	MaxRangeKm   *float64 `json:"maxRangeKm,omitempty"`
}

// DeliveryResponse is the JSON representation of a delivery.
type DeliveryResponse struct {
	ID               string     `json:"id"`
	HospitalID       string     `json:"hospitalId"`
	VillageID        string     `json:"villageId"`
	MedicineTypeID   string     `json:"medicineTypeId"`
	RequesterID      string     `json:"requesterId"`
	OperatorID       *string    `json:"operatorId"`
	DroneID          *string    `json:"droneId"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	DistanceKm       float64    `json:"distanceKm"`
	EtaMinutes       int        `json:"etaMinutes"`
	EstimatedArrival *time.Time `json:"estimatedArrival"`
	ActualArrival    *time.Time `json:"actualArrival"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// DroneResponse is the JSON representation of a fleet drone.
type DroneResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Model             string  `json:"model,omitempty"`
	Status            string  `json:"status"`
	BatteryLevel      int     `json:"batteryLevel"`
	MaxPayloadKg      float64 `json:"maxPayloadKg"`
	MaxRangeKm        float64 `json:"maxRangeKm"`
	CurrentDeliveryID *string `json:"currentDeliveryId"`
}

// CreatedResponse is returned by create endpoints so the client can
// locate the new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

func deliveryFromReadModel(m queries.DeliveryResponse) DeliveryResponse {
	resp := DeliveryResponse{
		ID:               m.ID.String(),
		HospitalID:       m.HospitalID.String(),
		VillageID:        m.VillageID.String(),
		MedicineTypeID:   m.MedicineTypeID.String(),
		RequesterID:      m.RequesterID.String(),
		Status:           m.Status,
		Priority:         m.Priority,
		DistanceKm:       m.DistanceKm,
		EtaMinutes:       m.ETAMinutes,
		EstimatedArrival: m.EstimatedArrival,
		ActualArrival:    m.ActualArrival,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
	}

	if m.OperatorID != nil {
		s := m.OperatorID.String()
		resp.OperatorID = &s
	}
	if m.DroneID != nil {
		s := m.DroneID.String()
		resp.DroneID = &s
	}

	return resp
}

func droneFromReadModel(m queries.DroneResponse) DroneResponse {
	resp := DroneResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Model:        m.Model,
		Status:       m.Status,
		BatteryLevel: m.BatteryLevel,
		MaxPayloadKg: m.MaxPayloadKg,
		MaxRangeKm:   m.MaxRangeKm,
	}

	if m.CurrentDeliveryID != nil {
		s := m.CurrentDeliveryID.String()
		resp.CurrentDeliveryID = &s
	}

	return resp
}
