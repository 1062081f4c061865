package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meddrone/internal/core/application/usecases/commands"
	"meddrone/internal/core/domain/model/kernel"
	"meddrone/internal/pkg/errs"
)

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

func TestCreateDroneCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDroneCommand(kernel.NewUUID(), "MD-9", "Zipline P2", 100, 4.5, 80)
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DroneRepository").Return(droneRepo).Once(),
		droneRepo.On("Add", ctx, mock.AnythingOfType("*drone.Drone")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDroneCommandHandler_Handle_InvalidBattery(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateDroneCommand(kernel.NewUUID(), "MD-9", "", 150, 4.5, 80)
	require.NoError(t, err)

	factory := new(MockDroneUoWFactory)
	handler := commands.NewCreateDroneCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateDroneCommand_RequiresName(t *testing.T) {
	_, err := commands.NewCreateDroneCommand(kernel.NewUUID(), "", "", 100, 4.5, 80)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
