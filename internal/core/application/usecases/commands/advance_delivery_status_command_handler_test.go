package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meddrone/internal/core/application/usecases/commands"
	"meddrone/internal/core/domain/model/delivery"
	"meddrone/internal/core/domain/model/drone"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/core/domain/services"
	"meddrone/internal/pkg/errs"
)

func newAssignedPair(t *testing.T) (*delivery.Delivery, *drone.Drone) {
	t.Helper()

	testDelivery := newStoredDelivery(t)
	testDrone := newStoredDrone(t, 90)
	_, err := services.NewDroneAllocator().Allocate(testDelivery, kernel.NewUUID(), []*drone.Drone{testDrone})
	require.NoError(t, err)
	return testDelivery, testDrone
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_NonTerminal(t *testing.T) {
	ctx := t.Context()

	testDelivery, _ := newAssignedPair(t)
	cmd, err := commands.NewAdvanceDeliveryStatusCommand(testDelivery.ID(), delivery.StatusInTransit)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusInTransit, testDelivery.Status())
	droneRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_DeliveredReleasesDrone(t *testing.T) {
	ctx := t.Context()

	testDelivery, testDrone := newAssignedPair(t)
	cmd, err := commands.NewAdvanceDeliveryStatusCommand(testDelivery.ID(), delivery.StatusDelivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once(),
		droneRepo.On("Update", ctx, mock.AnythingOfType("*drone.Drone")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.StatusDelivered, testDelivery.Status())
	assert.NotNil(t, testDelivery.ActualArrival())
	assert.Equal(t, drone.StatusAvailable, testDrone.Status())
	assert.GreaterOrEqual(t, testDrone.BatteryLevel(), 75)
	assert.LessOrEqual(t, testDrone.BatteryLevel(), 85)
	deliveryRepo.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
}

func TestAdvanceDeliveryStatusCommandHandler_Handle_TerminalIsSealed(t *testing.T) {
	ctx := t.Context()

	testDelivery, _ := newAssignedPair(t)
	_, err := testDelivery.Cancel()
	require.NoError(t, err)

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(testDelivery.ID(), delivery.StatusDelivered)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		uow.On("DroneRepository").Return(new(MockDroneRepository)).Once(),
		deliveryRepo.On("GetForUpdate", ctx, testDelivery.ID()).Return(testDelivery, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDeliveryStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStateConflict)
}

func TestNewAdvanceDeliveryStatusCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryStatusCommand(kernel.NewUUID(), delivery.StatusUnknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
