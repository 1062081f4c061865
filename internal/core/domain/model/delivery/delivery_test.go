package delivery_test

import (
	"testing"
	"time"

	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		delivery.PriorityNormal,
		"insulin restock",
		25.0,
		80,
		time.Now().Add(80*time.Minute),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("valid delivery starts pending and unbound", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.Nil(t, d.OperatorID())
		assert.Nil(t, d.DroneID())
		assert.Nil(t, d.ActualArrival())
		assert.NotNil(t, d.EstimatedArrival())
		assert.Equal(t, "insulin restock", d.Notes())
		require.NoError(t, d.Validate())
	})

	t.Run("invalid hospital id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), zeroID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.PriorityNormal, "", 25, 80, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid priority", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.PriorityUnknown, "", 25, 80, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero distance is a valid route", func(t *testing.T) {
		// Hospital and village can share coordinates; the ETA base
		// offset keeps the estimate positive.
		d, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.PriorityNormal, "", 0, 30, time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d.DistanceKm())
		assert.Equal(t, 30, d.ETAMinutes())
	})

	t.Run("invalid route figures", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.PriorityNormal, "", -0.5, 80, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			delivery.PriorityNormal, "", 25, -1, time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_Assign(t *testing.T) {
	t.Run("pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		operatorID := kernel.NewUUID()
		droneID := kernel.NewUUID()

		require.NoError(t, d.Assign(operatorID, droneID))

		assert.Equal(t, delivery.StatusPreparing, d.Status())
		require.NotNil(t, d.OperatorID())
		assert.True(t, d.OperatorID().IsEqual(operatorID))
		require.NotNil(t, d.DroneID())
		assert.True(t, d.DroneID().IsEqual(droneID))
	})

	t.Run("second assignment conflicts", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), kernel.NewUUID()))

		err := d.Assign(kernel.NewUUID(), kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, delivery.StatusPreparing, d.Status())
	})

	t.Run("invalid operator id", func(t *testing.T) {
		d := newTestDelivery(t)
		var zeroID kernel.UUID
		require.Error(t, d.Assign(zeroID, kernel.NewUUID()))
		assert.Equal(t, delivery.StatusPending, d.Status())
	})
}

func TestDelivery_AdvanceTo(t *testing.T) {
	t.Run("delivered sets actual arrival and requests release", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), kernel.NewUUID()))
		now := time.Now()

		release, err := d.AdvanceTo(delivery.StatusDelivered, now)

		require.NoError(t, err)
		assert.True(t, release)
		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.ActualArrival())
		assert.Equal(t, now, *d.ActualArrival())
	})

	t.Run("non-terminal advance requests no release", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), kernel.NewUUID()))

		release, err := d.AdvanceTo(delivery.StatusInTransit, time.Now())

		require.NoError(t, err)
		assert.False(t, release)
		assert.Nil(t, d.ActualArrival())
	})

	t.Run("terminal without drone requests no release", func(t *testing.T) {
		d := newTestDelivery(t)

		release, err := d.AdvanceTo(delivery.StatusFailed, time.Now())

		require.NoError(t, err)
		assert.False(t, release)
	})

	t.Run("drone id stays recorded after terminal transition", func(t *testing.T) {
		d := newTestDelivery(t)
		droneID := kernel.NewUUID()
		require.NoError(t, d.Assign(kernel.NewUUID(), droneID))

		_, err := d.AdvanceTo(delivery.StatusDelivered, time.Now())
		require.NoError(t, err)

		require.NotNil(t, d.DroneID())
		assert.True(t, d.DroneID().IsEqual(droneID))
	})

	t.Run("advance out of terminal state conflicts", func(t *testing.T) {
		d := newTestDelivery(t)
		_, err := d.AdvanceTo(delivery.StatusFailed, time.Now())
		require.NoError(t, err)

		_, err = d.AdvanceTo(delivery.StatusDelivered, time.Now())
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, delivery.StatusFailed, d.Status())
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("pending delivery without drone", func(t *testing.T) {
		d := newTestDelivery(t)

		release, err := d.Cancel()

		require.NoError(t, err)
		assert.False(t, release)
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("preparing delivery requests drone release", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), kernel.NewUUID()))

		release, err := d.Cancel()

		require.NoError(t, err)
		assert.True(t, release)
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("in-transit delivery cannot cancel and state is unchanged", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), kernel.NewUUID()))
		_, err := d.AdvanceTo(delivery.StatusInTransit, time.Now())
		require.NoError(t, err)

		_, err = d.Cancel()

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.NotNil(t, d.DroneID())
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores bindings and status", func(t *testing.T) {
		id := kernel.NewUUID()
		operatorID := kernel.NewUUID()
		droneID := kernel.NewUUID()
		eta := time.Now().Add(time.Hour)

		d, err := delivery.RestoreDelivery(
			id, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			&operatorID, &droneID,
			delivery.StatusInTransit, delivery.PriorityHigh,
			"cold chain", 12.5, 55, &eta, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.Equal(t, delivery.PriorityHigh, d.Priority())
		assert.True(t, d.OperatorID().IsEqual(operatorID))
		assert.True(t, d.DroneID().IsEqual(droneID))
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, nil,
			delivery.Status(42), delivery.PriorityNormal,
			"", 25, 80, nil, nil,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_IsRequestedBy(t *testing.T) {
	requesterID := kernel.NewUUID()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), requesterID,
		delivery.PriorityNormal, "", 25, 80, time.Now(),
	)
	require.NoError(t, err)

	assert.True(t, d.IsRequestedBy(requesterID))
	assert.False(t, d.IsRequestedBy(kernel.NewUUID()))
}
