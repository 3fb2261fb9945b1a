package parcel

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Physical bounds for a single parcel. Weight is in kilograms, dimensions in
// meters; derived volume is in cubic meters.
const (
	WeightMin float64 = 0.1
	WeightMax float64 = 1000
	SideMin   float64 = 0.01
	SideMax   float64 = 10
)

// Pricing rates for the quoted price formula:
// quotedPrice = weight*priceWeightRate + volume*priceVolumeRate.
const (
	priceWeightRate float64 = 10
	priceVolumeRate float64 = 5
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through the NewParcel or RestoreParcel factory methods.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel represents a customer shipment request. It is the aggregate root
// that carries physical dimensions, derived volume and price, and the status
// lifecycle driven by staff decisions and shipment events.
//
// Parcel follows these invariants:
//   - Weight and all three dimensions are positive and bounded
//   - volume = height × width × length, fixed at construction
//   - quotedPrice = weight×10 + volume×5, fixed at construction
//   - Attached to at most one shipment at a time
//   - Status transitions follow the lifecycle defined on Status
type Parcel struct {
	id         kernel.UUID
	customerID kernel.UUID
	companyID  kernel.UUID

	pickupAddress    string
	deliveryAddress  string
	pickupLocation   kernel.GeoPoint
	deliveryLocation kernel.GeoPoint

	weight float64
	height float64
	width  float64
	length float64

	// volume and quotedPrice are derived from the dimensions at construction
	// and never recomputed afterwards.
	volume      float64
	quotedPrice float64

	assignedWarehouseID *kernel.UUID
	assignedShipmentID  *kernel.UUID
	status              Status

	isConstructed bool
}

// NewParcel creates a new Parcel in Pending status, computing its volume and
// quoted price from the submitted dimensions. All inputs are validated;
// errors are aggregated.
func NewParcel(
	id kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	pickupLocation kernel.GeoPoint,
	deliveryLocation kernel.GeoPoint,
	weight float64,
	height float64,
	width float64,
	length float64,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setCompanyID(companyID),
		p.setAddresses(pickupAddress, deliveryAddress),
		p.setLocations(pickupLocation, deliveryLocation),
		p.setDimensions(weight, height, width, length),
	); err != nil {
		return nil, err
	}

	p.volume = p.height * p.width * p.length
	p.quotedPrice = p.weight*priceWeightRate + p.volume*priceVolumeRate

	return p, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage.
// Unlike NewParcel it restores the persisted status, assignments, and the
// stored volume/price rather than deriving them.
func RestoreParcel(
	id kernel.UUID,
	customerID kernel.UUID,
	companyID kernel.UUID,
	pickupAddress string,
	deliveryAddress string,
	pickupLocation kernel.GeoPoint,
	deliveryLocation kernel.GeoPoint,
	weight float64,
	height float64,
	width float64,
	length float64,
	volume float64,
	quotedPrice float64,
	assignedWarehouseID *kernel.UUID,
	assignedShipmentID *kernel.UUID,
	status Status,
) (*Parcel, error) {
	p, err := NewParcel(
		id, customerID, companyID,
		pickupAddress, deliveryAddress,
		pickupLocation, deliveryLocation,
		weight, height, width, length,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if assignedWarehouseID != nil {
		if err = assignedWarehouseID.Validate(); err != nil {
			return nil, err
		}
	}
	if assignedShipmentID != nil {
		if err = assignedShipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	p.volume = volume
	p.quotedPrice = quotedPrice
	p.assignedWarehouseID = assignedWarehouseID
	p.assignedShipmentID = assignedShipmentID
	p.status = status
	return p, nil
}

// Validate ensures the Parcel was properly constructed through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the identifier of the submitting customer.
func (p *Parcel) CustomerID() kernel.UUID {
	return p.customerID
}

// CompanyID returns the identifier of the handling company.
func (p *Parcel) CompanyID() kernel.UUID {
	return p.companyID
}

// PickupAddress returns the pickup street address.
func (p *Parcel) PickupAddress() string {
	return p.pickupAddress
}

// DeliveryAddress returns the delivery street address.
func (p *Parcel) DeliveryAddress() string {
	return p.deliveryAddress
}

// PickupLocation returns the pre-resolved pickup coordinates.
func (p *Parcel) PickupLocation() kernel.GeoPoint {
	return p.pickupLocation
}

// DeliveryLocation returns the pre-resolved delivery coordinates.
func (p *Parcel) DeliveryLocation() kernel.GeoPoint {
	return p.deliveryLocation
}

// Weight returns the parcel weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Height returns the parcel height in meters.
func (p *Parcel) Height() float64 {
	return p.height
}

// Width returns the parcel width in meters.
func (p *Parcel) Width() float64 {
	return p.width
}

// Length returns the parcel length in meters.
func (p *Parcel) Length() float64 {
	return p.length
}

// Volume returns the derived volume in cubic meters.
func (p *Parcel) Volume() float64 {
	return p.volume
}

// QuotedPrice returns the derived quoted price.
func (p *Parcel) QuotedPrice() float64 {
	return p.quotedPrice
}

// WarehouseID returns the assigned warehouse identifier, or nil before acceptance.
func (p *Parcel) WarehouseID() *kernel.UUID {
	return p.assignedWarehouseID
}

// ShipmentID returns the assigned shipment identifier, or nil while unassigned.
func (p *Parcel) ShipmentID() *kernel.UUID {
	return p.assignedShipmentID
}

// Status returns the current status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// Accept marks the parcel accepted and assigns it to the given warehouse.
// Only Pending parcels can be accepted.
func (p *Parcel) Accept(warehouseID kernel.UUID) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	status, err := p.status.Accept()
	if err != nil {
		return err
	}

	p.status = status
	p.assignedWarehouseID = &warehouseID
	return nil
}

// Reject marks the parcel rejected. Only Pending parcels can be rejected.
func (p *Parcel) Reject() error {
	if err := p.Validate(); err != nil {
		return err
	}

	status, err := p.status.Reject()
	if err != nil {
		return err
	}

	p.status = status
	return nil
}

// AssignToShipment attaches the parcel to a shipment and marks it Stored.
// The parcel must be Accepted and not already attached to a shipment.
func (p *Parcel) AssignToShipment(shipmentID kernel.UUID) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if p.assignedShipmentID != nil {
		return errs.NewValueIsInvalidErrorWithCause("shipmentID",
			errors.New("parcel is already assigned to a shipment"))
	}

	status, err := p.status.Store()
	if err != nil {
		return err
	}

	p.status = status
	p.assignedShipmentID = &shipmentID
	return nil
}

// MarkLoaded advances the parcel to Loaded; called when the owning shipment
// starts loading.
func (p *Parcel) MarkLoaded() error {
	status, err := p.status.Load()
	if err != nil {
		return err
	}
	p.status = status
	return nil
}

// MarkDispatched advances the parcel to Dispatched; called when the owning
// shipment departs.
func (p *Parcel) MarkDispatched() error {
	status, err := p.status.Dispatch()
	if err != nil {
		return err
	}
	p.status = status
	return nil
}

// MarkDelivered advances the parcel to Delivered; called when the owning
// shipment completes.
func (p *Parcel) MarkDelivered() error {
	status, err := p.status.Deliver()
	if err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	p.customerID = customerID
	return nil
}

func (p *Parcel) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	p.companyID = companyID
	return nil
}

func (p *Parcel) setAddresses(pickupAddress string, deliveryAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	p.pickupAddress = pickupAddress
	p.deliveryAddress = deliveryAddress
	return nil
}

func (p *Parcel) setLocations(pickupLocation kernel.GeoPoint, deliveryLocation kernel.GeoPoint) error {
	if err := errors.Join(pickupLocation.Validate(), deliveryLocation.Validate()); err != nil {
		return err
	}
	p.pickupLocation = pickupLocation
	p.deliveryLocation = deliveryLocation
	return nil
}

func (p *Parcel) setDimensions(weight float64, height float64, width float64, length float64) error {
	if weight < WeightMin || weight > WeightMax {
		return errs.NewValueIsOutOfRangeError("weight", weight, WeightMin, WeightMax)
	}
	for name, side := range map[string]float64{"height": height, "width": width, "length": length} {
		if side < SideMin || side > SideMax {
			return errs.NewValueIsOutOfRangeError(name, side, SideMin, SideMax)
		}
	}

	p.weight = weight
	p.height = height
	p.width = width
	p.length = length
	return nil
}
