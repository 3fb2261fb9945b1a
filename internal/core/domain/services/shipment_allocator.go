package services

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/model/vehicle"
)

// Cross-aggregate consistency errors for shipment allocation.
var (
	// ErrCompanyMismatch is returned when the entities involved in an
	// allocation belong to different companies.
	ErrCompanyMismatch = errors.New("entities belong to different companies")
	// ErrWarehouseMismatch is returned when a shipment or vehicle is not
	// stationed at the parcel's assigned warehouse.
	ErrWarehouseMismatch = errors.New("warehouse does not match parcel assignment")
	// ErrParcelNotAccepted is returned when attempting to allocate a parcel
	// that is not in Accepted status.
	ErrParcelNotAccepted = errors.New("parcel is not in accepted status")
)

// ShipmentAllocator is the domain service at the heart of parcel assignment.
// It performs the cross-aggregate mutations that bind a parcel, a shipment,
// and a vehicle together, keeping the capacity ledger and the parcel
// lifecycle in lockstep.
//
// The allocator operates on aggregates its caller has already fetched and
// locked; it never touches persistence. Callers must persist every aggregate
// the allocator mutated within the same transaction.
//
// Business rules:
//   - Consolidation into an existing Pending shipment is always preferred
//     over creating a new one (the caller enforces the search order; the
//     allocator enforces the consistency of whichever path is taken)
//   - Vehicle capacity is reserved from remaining capacity, read and written
//     on the same locked row
//   - The parcel becomes Stored with its shipment reference set in the same
//     operation that reserves capacity
type ShipmentAllocator struct{}

// NewShipmentAllocator creates a new ShipmentAllocator instance.
func NewShipmentAllocator() ShipmentAllocator {
	return ShipmentAllocator{}
}

// Consolidate attaches an accepted parcel to an existing Pending shipment.
// The shipment must belong to the parcel's company and originate from the
// parcel's assigned warehouse; the vehicle must be the shipment's vehicle
// with enough remaining capacity for the parcel.
//
// On success the shipment totals grow by the parcel's weight/volume, the
// vehicle's current load is incremented, and the parcel becomes Stored.
func (a ShipmentAllocator) Consolidate(
	p *parcel.Parcel,
	s *shipment.Shipment,
	v *vehicle.Vehicle,
) error {
	if err := errors.Join(p.Validate(), s.Validate(), v.Validate()); err != nil {
		return err
	}

	if err := a.validateParcelAssignable(p); err != nil {
		return err
	}
	if !s.CompanyID().IsEqual(p.CompanyID()) || !v.CompanyID().IsEqual(p.CompanyID()) {
		return ErrCompanyMismatch
	}
	if !s.WarehouseID().IsEqual(*p.WarehouseID()) {
		return ErrWarehouseMismatch
	}

	if err := v.Reserve(p.Weight(), p.Volume()); err != nil {
		return err
	}

	if err := s.AttachParcel(p.ID(), p.Weight(), p.Volume()); err != nil {
		return err
	}

	return p.AssignToShipment(s.ID())
}

// PlanNewShipment creates a fresh Pending shipment carrying the parcel, led
// by the given driver and vehicle from the parcel's assigned warehouse. The
// vehicle must be stationed at that warehouse and able to fit the parcel in
// its remaining capacity.
func (a ShipmentAllocator) PlanNewShipment(
	shipmentID kernel.UUID,
	p *parcel.Parcel,
	d *driver.Driver,
	v *vehicle.Vehicle,
) (*shipment.Shipment, error) {
	if err := errors.Join(p.Validate(), d.Validate(), v.Validate()); err != nil {
		return nil, err
	}

	if err := a.validateParcelAssignable(p); err != nil {
		return nil, err
	}
	if !d.CompanyID().IsEqual(p.CompanyID()) || !v.CompanyID().IsEqual(p.CompanyID()) {
		return nil, ErrCompanyMismatch
	}
	if v.WarehouseID() == nil || !v.WarehouseID().IsEqual(*p.WarehouseID()) {
		return nil, ErrWarehouseMismatch
	}

	if err := v.Reserve(p.Weight(), p.Volume()); err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(shipmentID, p.CompanyID(), d.ID(), v.ID(), *p.WarehouseID())
	if err != nil {
		return nil, err
	}

	if err = s.AttachParcel(p.ID(), p.Weight(), p.Volume()); err != nil {
		return nil, err
	}

	if err = p.AssignToShipment(s.ID()); err != nil {
		return nil, err
	}

	return s, nil
}

// validateParcelAssignable checks the preconditions shared by both
// allocation paths: the parcel is Accepted, carries a warehouse assignment,
// and is not yet attached anywhere.
func (a ShipmentAllocator) validateParcelAssignable(p *parcel.Parcel) error {
	if p.Status() != parcel.Accepted {
		return ErrParcelNotAccepted
	}
	if p.WarehouseID() == nil {
		return ErrWarehouseMismatch
	}
	if p.ShipmentID() != nil {
		return shipment.ErrParcelAlreadyAttached
	}
	return nil
}
