package shipment

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory methods.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrShipmentNotOpen is returned when attempting to attach a parcel to a
	// shipment that already left the Pending status.
	ErrShipmentNotOpen = errors.New("shipment is no longer open for parcels")
	// ErrParcelAlreadyAttached is returned when attaching a parcel that is
	// already part of the shipment.
	ErrParcelAlreadyAttached = errors.New("parcel is already attached to shipment")
)

// Shipment represents one driver-led trip from a warehouse. It is the
// aggregate root coordinating exactly one driver, one vehicle, and one
// warehouse with the set of parcels it carries.
//
// Invariants:
//   - totalWeight and totalVolume equal the sums over attached parcels
//   - The parcel set only grows; totals are never decremented (historical
//     totals are retained for audit after completion)
//   - Status transitions are strictly linear (see Status)
type Shipment struct {
	id          kernel.UUID
	companyID   kernel.UUID
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	warehouseID kernel.UUID

	totalWeight float64
	totalVolume float64
	status      Status

	// parcelIDs backs the shipment<->parcel many-to-many association;
	// parcels reference the shipment back by id, not by pointer.
	parcelIDs []kernel.UUID

	isConstructed bool
}

// NewShipment creates a new empty Shipment in Pending status.
func NewShipment(
	id kernel.UUID,
	companyID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	warehouseID kernel.UUID,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCompanyID(companyID),
		s.setDriverID(driverID),
		s.setVehicleID(vehicleID),
		s.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage,
// including totals, status, and the attached parcel set.
func RestoreShipment(
	id kernel.UUID,
	companyID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	warehouseID kernel.UUID,
	totalWeight float64,
	totalVolume float64,
	status Status,
	parcelIDs []kernel.UUID,
) (*Shipment, error) {
	s, err := NewShipment(id, companyID, driverID, vehicleID, warehouseID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if totalWeight < 0 {
		return nil, errs.NewValueIsInvalidError("totalWeight")
	}
	if totalVolume < 0 {
		return nil, errs.NewValueIsInvalidError("totalVolume")
	}
	for _, parcelID := range parcelIDs {
		if err = parcelID.Validate(); err != nil {
			return nil, err
		}
	}

	s.totalWeight = totalWeight
	s.totalVolume = totalVolume
	s.status = status
	s.parcelIDs = parcelIDs
	return s, nil
}

// Validate ensures the Shipment was properly constructed through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// CompanyID returns the identifier of the owning company.
func (s *Shipment) CompanyID() kernel.UUID {
	return s.companyID
}

// DriverID returns the assigned driver's identifier.
func (s *Shipment) DriverID() kernel.UUID {
	return s.driverID
}

// VehicleID returns the assigned vehicle's identifier.
func (s *Shipment) VehicleID() kernel.UUID {
	return s.vehicleID
}

// WarehouseID returns the origin warehouse identifier.
func (s *Shipment) WarehouseID() kernel.UUID {
	return s.warehouseID
}

// TotalWeight returns the aggregate weight of attached parcels.
func (s *Shipment) TotalWeight() float64 {
	return s.totalWeight
}

// TotalVolume returns the aggregate volume of attached parcels.
func (s *Shipment) TotalVolume() float64 {
	return s.totalVolume
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// ParcelIDs returns the identifiers of attached parcels.
func (s *Shipment) ParcelIDs() []kernel.UUID {
	return s.parcelIDs
}

// ContainsParcel reports whether the given parcel is attached.
func (s *Shipment) ContainsParcel(parcelID kernel.UUID) bool {
	for _, id := range s.parcelIDs {
		if id.IsEqual(parcelID) {
			return true
		}
	}
	return false
}

// AttachParcel adds a parcel to the shipment and increments the aggregate
// totals by the parcel's weight and volume. The shipment must still be
// Pending; a parcel can be attached only once.
func (s *Shipment) AttachParcel(parcelID kernel.UUID, weight float64, volume float64) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := parcelID.Validate(); err != nil {
		return err
	}
	if s.status != Pending {
		return ErrShipmentNotOpen
	}
	if s.ContainsParcel(parcelID) {
		return ErrParcelAlreadyAttached
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	if volume <= 0 {
		return errs.NewValueIsInvalidError("volume")
	}

	s.parcelIDs = append(s.parcelIDs, parcelID)
	s.totalWeight += weight
	s.totalVolume += volume
	return nil
}

// TransitionTo advances the shipment's status. Fails unless the new status
// follows the current one linearly.
func (s *Shipment) TransitionTo(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}

	status, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = status
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	s.companyID = companyID
	return nil
}

func (s *Shipment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	s.driverID = driverID
	return nil
}

func (s *Shipment) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	s.vehicleID = vehicleID
	return nil
}

func (s *Shipment) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	s.warehouseID = warehouseID
	return nil
}
