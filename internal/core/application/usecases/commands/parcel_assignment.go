package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// assignParcelToShipment runs the consolidation algorithm for one accepted
// parcel inside the caller's transaction:
//
//  1. Look for an existing pending shipment of the company at the parcel's
//     warehouse whose vehicle still has room; attach to it when found.
//  2. Otherwise find a free driver; none means the parcel stays accepted.
//  3. Then find a stationed vehicle with room; none means the parcel stays
//     accepted and the driver is not reserved.
//  4. Otherwise open a new pending shipment with that driver and vehicle.
//
// Candidate rows come back locked for update, so the capacity check and the
// subsequent reservation act on the same row state. The helper persists the
// shipment and vehicle it touches; the caller persists the parcel.
//
// Returns true when the parcel was attached to a shipment. Exhausted
// resources are a normal outcome, not an error.
func assignParcelToShipment(
	ctx context.Context,
	uow AssignmentUoW,
	allocator services.ShipmentAllocator,
	p *parcel.Parcel,
) (bool, error) {
	shipmentRepo := uow.ShipmentRepository()
	vehicleRepo := uow.VehicleRepository()

	candidate, err := shipmentRepo.FindConsolidationCandidate(
		ctx, p.CompanyID(), *p.WarehouseID(), p.Weight(), p.Volume(),
	)
	switch {
	case err == nil:
		shipmentVehicle, vehicleErr := vehicleRepo.GetForUpdate(ctx, candidate.VehicleID())
		if vehicleErr != nil {
			return false, vehicleErr
		}

		if err = allocator.Consolidate(p, candidate, shipmentVehicle); err != nil {
			return false, err
		}

		if err = vehicleRepo.Update(ctx, shipmentVehicle); err != nil {
			return false, err
		}
		if err = shipmentRepo.Update(ctx, candidate); err != nil {
			return false, err
		}

		return true, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return false, err
	}

	freeDriver, err := uow.DriverRepository().GetFirstAvailable(ctx, p.CompanyID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	suitableVehicle, err := vehicleRepo.GetFirstSuitable(
		ctx, p.CompanyID(), *p.WarehouseID(), p.Weight(), p.Volume(),
	)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	newShipment, err := allocator.PlanNewShipment(kernel.NewUUID(), p, freeDriver, suitableVehicle)
	if err != nil {
		return false, err
	}

	if err = vehicleRepo.Update(ctx, suitableVehicle); err != nil {
		return false, err
	}
	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return false, err
	}

	return true, nil
}
