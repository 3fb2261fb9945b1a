package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), companyID, &warehouseID, "A123BC", "Truck", 10000, 50,
	)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("VehicleRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := vehicle.NewStrictTablePolicy(vehicle.DefaultCapacityTable())
	h := commands.NewCreateVehicleCommandHandler(factory, policy)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "A123BC", created.VehicleNumber())
	require.Equal(t, "Truck", created.VehicleType())
	require.InDelta(t, 0, created.CurrentWeight(), 1e-9)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_CapacityMismatch(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "A123BC", "Truck", 5000, 50,
	)
	require.NoError(t, err)

	factory := new(MockVehicleUoWFactory)
	policy := vehicle.NewStrictTablePolicy(vehicle.DefaultCapacityTable())
	h := commands.NewCreateVehicleCommandHandler(factory, policy)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, vehicle.ErrCapacityMismatch)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateVehicleCommandHandler_Handle_UnknownVehicleType(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "A123BC", "Scooter", 100, 1,
	)
	require.NoError(t, err)

	factory := new(MockVehicleUoWFactory)
	policy := vehicle.NewStrictTablePolicy(vehicle.DefaultCapacityTable())
	h := commands.NewCreateVehicleCommandHandler(factory, policy)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, vehicle.ErrUnknownVehicleType)
}

func TestCreateVehicleCommandHandler_Handle_FreeFormPolicyAcceptsCustomCapacity(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), nil, "B777XY", "Refrigerated Van", 1200, 12,
	)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("VehicleRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	policy := vehicle.NewFreeFormPolicy(25000, 100)
	h := commands.NewCreateVehicleCommandHandler(factory, policy)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "Refrigerated Van", created.VehicleType())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateVehicleCommand{} // not constructed properly
	factory := new(MockVehicleUoWFactory)
	policy := vehicle.NewFreeFormPolicy(25000, 100)
	h := commands.NewCreateVehicleCommandHandler(factory, policy)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCreateVehicleCommandIsNotConstructed)
}
