package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignPendingParcelsCommandHandler_Handle_ConsolidatesWaitingParcel(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	p := newAcceptedParcel(t, companyID, warehouseID, 20, 0.5, 0.5, 0.4)
	v := newStationedVehicle(t, companyID, warehouseID, 1500, 15)
	existing := newPendingShipment(t, companyID, v.ID(), warehouseID)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetFirstAcceptedUnassigned", ctx).Return(p, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, warehouseID, p.Weight(), p.Volume()).
			Return(existing, nil).Once(),
		vehicleRepo.On("GetForUpdate", ctx, v.ID()).Return(v, nil).Once(),
		vehicleRepo.On("Update", ctx, v).Return(nil).Once(),
		shipmentRepo.On("Update", ctx, existing).Return(nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingParcelsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewAssignPendingParcelsCommand())
	require.NoError(t, err)
	require.Equal(t, parcel.Stored, p.Status())
	require.True(t, p.ShipmentID().IsEqual(existing.ID()))
	parcelRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignPendingParcelsCommandHandler_Handle_NoParcelsWaiting(t *testing.T) {
	ctx := t.Context()

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetFirstAcceptedUnassigned", ctx).
			Return(nil, errs.NewObjectNotFoundError("parcel", "first accepted unassigned")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingParcelsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewAssignPendingParcelsCommand())
	require.ErrorIs(t, err, commands.ErrNoParcelsWaiting)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAssignPendingParcelsCommandHandler_Handle_NoResourcesAvailable(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	p := newAcceptedParcel(t, companyID, warehouseID, 20, 0.5, 0.5, 0.4)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("DriverRepository").Return(driverRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetFirstAcceptedUnassigned", ctx).Return(p, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, warehouseID, p.Weight(), p.Volume()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "consolidation candidate")).Once(),
		driverRepo.On("GetFirstAvailable", ctx, companyID).
			Return(nil, errs.NewObjectNotFoundError("driver", "first available")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignPendingParcelsCommandHandler(factory)
	err := h.Handle(ctx, commands.NewAssignPendingParcelsCommand())
	require.ErrorIs(t, err, commands.ErrNoResourcesAvailable)
	require.Equal(t, parcel.Accepted, p.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
