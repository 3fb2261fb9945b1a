package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// Resource errors for manual shipment composition.
var (
	// ErrDriverNotFound is returned when the chosen driver does not exist or
	// belongs to another company.
	ErrDriverNotFound = errors.New("driver not found")
	// ErrDriverBusy is returned when the chosen driver already leads an active shipment.
	ErrDriverBusy = errors.New("driver already has an active shipment")
	// ErrVehicleNotFound is returned when the chosen vehicle does not exist or
	// belongs to another company.
	ErrVehicleNotFound = errors.New("vehicle not found")
	// ErrWarehouseNotFound is returned when the chosen warehouse does not exist
	// or belongs to another company.
	ErrWarehouseNotFound = errors.New("warehouse not found")
	// ErrParcelsUnavailable is returned when any named parcel is missing, not
	// accepted, already assigned, or owned by another company.
	ErrParcelsUnavailable = errors.New("one or more parcels are not available for shipment")
)

// CreateShipmentCommandHandler handles the business logic for manual shipment
// composition. Staff pick the driver, vehicle, warehouse, and parcels; the
// handler verifies the pieces fit together and loads the vehicle.
//
// Unlike automatic assignment, the summed parcel load is checked against the
// vehicle's full capacity: a manually composed shipment loads its vehicle
// from empty.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for manual shipment composition.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment composition command.
// Verification order: driver exists and is free, the warehouse belongs to the
// company, every parcel is available, the vehicle belongs to the company and
// the load fits it. Any failure rolls the whole composition back.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.DriverRepository().GetForCompany(ctx, cmd.DriverID(), cmd.CompanyID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	busy, err := uow.ShipmentRepository().ExistsActiveForDriver(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, ErrDriverBusy
	}

	loadWarehouse, err := uow.WarehouseRepository().Get(ctx, cmd.WarehouseID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	if !loadWarehouse.CompanyID().IsEqual(cmd.CompanyID()) {
		return nil, ErrWarehouseNotFound
	}

	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetAcceptedByIDs(ctx, cmd.CompanyID(), cmd.ParcelIDs())
	if err != nil {
		return nil, err
	}
	if len(parcels) != len(cmd.ParcelIDs()) {
		return nil, ErrParcelsUnavailable
	}

	loadVehicle, err := uow.VehicleRepository().GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	if !loadVehicle.CompanyID().IsEqual(cmd.CompanyID()) {
		return nil, ErrVehicleNotFound
	}

	var totalWeight, totalVolume float64
	for _, p := range parcels {
		totalWeight += p.Weight()
		totalVolume += p.Volume()
	}

	if err = loadVehicle.ReserveTotal(totalWeight, totalVolume); err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.CompanyID(), cmd.DriverID(), cmd.VehicleID(), cmd.WarehouseID(),
	)
	if err != nil {
		return nil, err
	}

	for _, p := range parcels {
		if err = newShipment.AttachParcel(p.ID(), p.Weight(), p.Volume()); err != nil {
			return nil, err
		}
		if err = p.AssignToShipment(newShipment.ID()); err != nil {
			return nil, err
		}
		if err = parcelRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}
	if err = uow.VehicleRepository().Update(ctx, loadVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newShipment, nil
}
