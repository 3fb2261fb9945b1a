package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptParcelCommandHandler_Handle_ConsolidatesIntoExistingShipment(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	wh := newTestWarehouse(t, companyID)
	p := newPendingParcel(t, companyID, 20, 0.5, 0.5, 0.4)
	v := newStationedVehicle(t, companyID, wh.ID(), 1500, 15)
	existing := newPendingShipment(t, companyID, v.ID(), wh.ID())

	cmd, err := commands.NewAcceptParcelCommand(p.ID(), companyID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetPendingForCompany", ctx, p.ID(), companyID).Return(p, nil).Once(),
		warehouseRepo.On("GetAllByCompany", ctx, companyID).
			Return([]*warehouse.Warehouse{wh}, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
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

	h := commands.NewAcceptParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.AutoAssigned)
	require.Equal(t, "Parcel accepted and assigned to shipment", result.Message)
	require.Equal(t, parcel.Stored, p.Status())
	require.NotNil(t, p.ShipmentID())
	require.True(t, p.ShipmentID().IsEqual(existing.ID()))
	require.InDelta(t, p.Weight(), existing.TotalWeight(), 1e-9)
	require.InDelta(t, p.Weight(), v.CurrentWeight(), 1e-9)
	parcelRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	warehouseRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptParcelCommandHandler_Handle_OpensNewShipment(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	wh := newTestWarehouse(t, companyID)
	p := newPendingParcel(t, companyID, 20, 0.5, 0.5, 0.4)
	d := newTestDriver(t, companyID)
	v := newStationedVehicle(t, companyID, wh.ID(), 1500, 15)

	cmd, err := commands.NewAcceptParcelCommand(p.ID(), companyID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	warehouseRepo := new(MockWarehouseRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("DriverRepository").Return(driverRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetPendingForCompany", ctx, p.ID(), companyID).Return(p, nil).Once(),
		warehouseRepo.On("GetAllByCompany", ctx, companyID).
			Return([]*warehouse.Warehouse{wh}, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "consolidation candidate")).Once(),
		driverRepo.On("GetFirstAvailable", ctx, companyID).Return(d, nil).Once(),
		vehicleRepo.On("GetFirstSuitable", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
			Return(v, nil).Once(),
		vehicleRepo.On("Update", ctx, v).Return(nil).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.AutoAssigned)
	require.Equal(t, parcel.Stored, p.Status())
	require.NotNil(t, p.ShipmentID())
	require.InDelta(t, p.Weight(), v.CurrentWeight(), 1e-9)
	parcelRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptParcelCommandHandler_Handle_WaitsWhenNoDriverIsFree(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	wh := newTestWarehouse(t, companyID)
	p := newPendingParcel(t, companyID, 20, 0.5, 0.5, 0.4)

	cmd, err := commands.NewAcceptParcelCommand(p.ID(), companyID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	warehouseRepo := new(MockWarehouseRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("DriverRepository").Return(driverRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetPendingForCompany", ctx, p.ID(), companyID).Return(p, nil).Once(),
		warehouseRepo.On("GetAllByCompany", ctx, companyID).
			Return([]*warehouse.Warehouse{wh}, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "consolidation candidate")).Once(),
		driverRepo.On("GetFirstAvailable", ctx, companyID).
			Return(nil, errs.NewObjectNotFoundError("driver", "first available")).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, result.AutoAssigned)
	require.Equal(t, "Parcel accepted but waiting for driver/vehicle availability", result.Message)
	require.Equal(t, parcel.Accepted, p.Status())
	require.NotNil(t, p.WarehouseID())
	require.True(t, p.WarehouseID().IsEqual(wh.ID()))
	require.Nil(t, p.ShipmentID())
	parcelRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptParcelCommandHandler_Handle_WaitsWhenNoVehicleFits(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	wh := newTestWarehouse(t, companyID)
	p := newPendingParcel(t, companyID, 20, 0.5, 0.5, 0.4)
	d := newTestDriver(t, companyID)

	cmd, err := commands.NewAcceptParcelCommand(p.ID(), companyID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	shipmentRepo := new(MockShipmentRepository)
	vehicleRepo := new(MockVehicleRepository)
	warehouseRepo := new(MockWarehouseRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("VehicleRepository").Return(vehicleRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	uow.On("DriverRepository").Return(driverRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetPendingForCompany", ctx, p.ID(), companyID).Return(p, nil).Once(),
		warehouseRepo.On("GetAllByCompany", ctx, companyID).
			Return([]*warehouse.Warehouse{wh}, nil).Once(),
		shipmentRepo.On("FindConsolidationCandidate", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
			Return(nil, errs.NewObjectNotFoundError("shipment", "consolidation candidate")).Once(),
		driverRepo.On("GetFirstAvailable", ctx, companyID).Return(d, nil).Once(),
		vehicleRepo.On("GetFirstSuitable", ctx, companyID, wh.ID(), p.Weight(), p.Volume()).
			Return(nil, errs.NewObjectNotFoundError("vehicle", "first suitable")).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptParcelCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, result.AutoAssigned)
	require.Equal(t, "Parcel accepted but waiting for driver/vehicle availability", result.Message)
	require.Equal(t, parcel.Accepted, p.Status())
	require.NotNil(t, p.WarehouseID())
	require.Nil(t, p.ShipmentID())
	parcelRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	shipmentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAcceptParcelCommandHandler_Handle_NoWarehouseRollsBack(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	p := newPendingParcel(t, companyID, 20, 0.5, 0.5, 0.4)

	cmd, err := commands.NewAcceptParcelCommand(p.ID(), companyID)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	warehouseRepo := new(MockWarehouseRepository)
	uow := new(MockUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("WarehouseRepository").Return(warehouseRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetPendingForCompany", ctx, p.ID(), companyID).Return(p, nil).Once(),
		warehouseRepo.On("GetAllByCompany", ctx, companyID).
			Return([]*warehouse.Warehouse{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptParcelCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrNoWarehouseAvailable)
	require.Equal(t, parcel.Pending, p.Status())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptParcelCommand{} // not constructed properly
	factory := new(MockAssignmentUoWFactory)
	h := commands.NewAcceptParcelCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrAcceptParcelCommandIsNotConstructed)
}
