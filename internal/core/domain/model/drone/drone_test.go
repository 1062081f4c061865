package drone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

func newTestDrone(t *testing.T, battery int) *drone.Drone {
	t.Helper()

	d, err := drone.NewDrone(kernel.NewUUID(), "MD-1", "Zipline P2", battery, 4.5, 80)
	require.NoError(t, err)
	return d
}

func TestNewDrone(t *testing.T) {
	id := kernel.NewUUID()

	d, err := drone.NewDrone(id, "MD-7", "Wingcopter 198", 95, 5, 110)
	require.NoError(t, err)

	assert.Equal(t, id, d.ID())
	assert.Equal(t, "MD-7", d.Name())
	assert.Equal(t, "Wingcopter 198", d.Model())
	assert.Equal(t, drone.StatusAvailable, d.Status())
	assert.Equal(t, 95, d.BatteryLevel())
	assert.InDelta(t, 5, d.MaxPayloadKg(), 1e-9)
	assert.InDelta(t, 110, d.MaxRangeKm(), 1e-9)
	assert.Nil(t, d.CurrentDelivery())
	assert.NoError(t, d.Validate())
}

func TestNewDroneValidation(t *testing.T) {
	id := kernel.NewUUID()

	tests := map[string]struct {
		name     string
		battery  int
		payload  float64
		rangeKm  float64
		sentinel error
	}{
		"empty name":       {name: "", battery: 100, payload: 5, rangeKm: 80, sentinel: errs.ErrValueIsRequired},
		"battery too low":  {name: "MD-1", battery: -1, payload: 5, rangeKm: 80, sentinel: errs.ErrValueIsOutOfRange},
		"battery too high": {name: "MD-1", battery: 101, payload: 5, rangeKm: 80, sentinel: errs.ErrValueIsOutOfRange},
		"zero payload":     {name: "MD-1", battery: 100, payload: 0, rangeKm: 80, sentinel: errs.ErrValueIsInvalid},
		"zero range":       {name: "MD-1", battery: 100, payload: 5, rangeKm: 0, sentinel: errs.ErrValueIsInvalid},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := drone.NewDrone(id, tc.name, "", tc.battery, tc.payload, tc.rangeKm)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestDroneAllocate(t *testing.T) {
	d := newTestDrone(t, 90)
	deliveryID := kernel.NewUUID()

	require.NoError(t, d.Allocate(deliveryID))

	assert.Equal(t, drone.StatusDelivering, d.Status())
	require.NotNil(t, d.CurrentDelivery())
	assert.Equal(t, deliveryID, *d.CurrentDelivery())
}

func TestDroneAllocateNotAvailable(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	err := d.Allocate(kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestDroneRelease(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	d.Release(12)

	assert.Equal(t, drone.StatusAvailable, d.Status())
	assert.Equal(t, 78, d.BatteryLevel())
	assert.Nil(t, d.CurrentDelivery())
}

func TestDroneReleaseFloorsBattery(t *testing.T) {
	d := newTestDrone(t, 15)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	d.Release(14)

	assert.Equal(t, drone.BatteryFloorAfterDrain, d.BatteryLevel())
}

func TestDroneReleaseIdempotent(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	d.Release(10)
	d.Release(10)

	assert.Equal(t, 80, d.BatteryLevel(), "second release must not drain again")
	assert.Equal(t, drone.StatusAvailable, d.Status())
}

func TestDroneReleaseWithoutDrain(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	d.ReleaseWithoutDrain()

	assert.Equal(t, drone.StatusAvailable, d.Status())
	assert.Equal(t, 90, d.BatteryLevel())
	assert.Nil(t, d.CurrentDelivery())
}

func TestDroneSetStatus(t *testing.T) {
	d := newTestDrone(t, 90)

	require.NoError(t, d.SetStatus(drone.StatusMaintenance))
	assert.Equal(t, drone.StatusMaintenance, d.Status())

	require.NoError(t, d.SetStatus(drone.StatusCharging))
	require.NoError(t, d.SetStatus(drone.StatusAvailable))
	assert.Equal(t, drone.StatusAvailable, d.Status())
}

func TestDroneSetStatusWhileDelivering(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Allocate(kernel.NewUUID()))

	err := d.SetStatus(drone.StatusMaintenance)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestDroneAmendAttributes(t *testing.T) {
	d := newTestDrone(t, 90)

	require.NoError(t, d.Rename("MD-9"))
	require.NoError(t, d.SetModel("Zipline P1"))
	require.NoError(t, d.SetBatteryLevel(55))
	require.NoError(t, d.SetMaxPayloadKg(3.2))
	require.NoError(t, d.SetMaxRangeKm(60))

	assert.Equal(t, "MD-9", d.Name())
	assert.Equal(t, "Zipline P1", d.Model())
	assert.Equal(t, 55, d.BatteryLevel())
	assert.InDelta(t, 3.2, d.MaxPayloadKg(), 1e-9)
	assert.InDelta(t, 60, d.MaxRangeKm(), 1e-9)
}

func TestDroneAmendAttributesInvalid(t *testing.T) {
	d := newTestDrone(t, 90)

	assert.ErrorIs(t, d.Rename(""), errs.ErrValueIsRequired)
	assert.ErrorIs(t, d.SetBatteryLevel(101), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, d.SetBatteryLevel(-1), errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, d.SetMaxPayloadKg(0), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, d.SetMaxRangeKm(-1), errs.ErrValueIsInvalid)

	assert.Equal(t, "MD-1", d.Name(), "rejected amendments must not stick")
	assert.Equal(t, 90, d.BatteryLevel())
}

func TestDroneDecommission(t *testing.T) {
	d := newTestDrone(t, 90)
	require.NoError(t, d.Decommission())

	require.NoError(t, d.Allocate(kernel.NewUUID()))
	err := d.Decommission()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestRestoreDrone(t *testing.T) {
	id := kernel.NewUUID()
	deliveryID := kernel.NewUUID()

	d := drone.RestoreDrone(id, "MD-3", "DJI FlyCart 30", drone.StatusDelivering, 42, 30, 28, &deliveryID)

	assert.NoError(t, d.Validate())
	assert.Equal(t, id, d.ID())
	assert.Equal(t, drone.StatusDelivering, d.Status())
	assert.Equal(t, 42, d.BatteryLevel())
	require.NotNil(t, d.CurrentDelivery())
	assert.Equal(t, deliveryID, *d.CurrentDelivery())
}

func TestDroneValidate(t *testing.T) {
	var d drone.Drone
	assert.Error(t, d.Validate())
}
