package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meddrone/internal/core/application/usecases/commands"
	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateDroneCommandHandler_Handle_GroundsForMaintenance(t *testing.T) {
	ctx := t.Context()

	testDrone, err := drone.NewDrone(kernel.NewUUID(), "MD-4", "Zipline P2", 80, 4.5, 80)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDroneCommand(testDrone.ID(), nil, nil,
		ptr(drone.StatusMaintenance), nil, nil, nil)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("Update", ctx, testDrone).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, drone.StatusMaintenance, testDrone.Status())
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDroneCommandHandler_Handle_PartialAmendment(t *testing.T) {
	ctx := t.Context()

	testDrone, err := drone.NewDrone(kernel.NewUUID(), "MD-4", "Zipline P2", 80, 4.5, 80)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDroneCommand(testDrone.ID(), ptr("MD-5"), nil,
		nil, ptr(100), nil, nil)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("Update", ctx, testDrone).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "MD-5", testDrone.Name())
	assert.Equal(t, 100, testDrone.BatteryLevel())
	assert.Equal(t, "Zipline P2", testDrone.Model(), "absent fields keep their value")
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDroneCommandHandler_Handle_DeliveringCannotBeGrounded(t *testing.T) {
	ctx := t.Context()

	testDrone, err := drone.NewDrone(kernel.NewUUID(), "MD-4", "Zipline P2", 80, 4.5, 80)
	require.NoError(t, err)
	require.NoError(t, testDrone.Allocate(kernel.NewUUID()))

	cmd, err := commands.NewUpdateDroneCommand(testDrone.ID(), nil, nil,
		ptr(drone.StatusMaintenance), nil, nil, nil)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
	droneRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateDroneCommandHandler_Handle_DroneNotFound(t *testing.T) {
	ctx := t.Context()

	droneID := kernel.NewUUID()
	cmd, err := commands.NewUpdateDroneCommand(droneID, ptr("MD-5"), nil, nil, nil, nil, nil)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Get", ctx, droneID).
			Return(nil, errs.NewObjectNotFoundError("droneId", droneID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewUpdateDroneCommand_RequiresAField(t *testing.T) {
	_, err := commands.NewUpdateDroneCommand(kernel.NewUUID(), nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
