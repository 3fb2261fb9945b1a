package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrSubmitParcelCommandIsNotConstructed = errors.New(
	"SubmitParcelCommand must be created via NewSubmitParcelCommand constructor",
)

// SubmitParcelCommand represents a customer's request to ship a parcel.
// Carries the pickup/delivery addresses with their pre-resolved coordinates
// and the declared physical dimensions.
//
// Example:
//
//	cmd, err := NewSubmitParcelCommand(
//	    kernel.NewUUID(), customerID, companyID,
//	    "12 Dock Road", "9 Market Square", pickup, delivery,
//	    4.5, 0.4, 0.3, 0.5,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
type SubmitParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID   kernel.UUID
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

	guard guard.ConstructorGuard
}

// NewSubmitParcelCommand creates a command to submit a new parcel.
// Identifier and coordinate validation happens here; dimensional bounds are
// enforced by the parcel aggregate itself.
func NewSubmitParcelCommand(
	parcelID kernel.UUID,
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
) (SubmitParcelCommand, error) {
	cmd := SubmitParcelCommand{
		pickupAddress:    pickupAddress,
		deliveryAddress:  deliveryAddress,
		pickupLocation:   pickupLocation,
		deliveryLocation: deliveryLocation,
		weight:           weight,
		height:           height,
		width:            width,
		length:           length,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCustomerID(customerID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return SubmitParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitParcelCommand) Validate() error {
	return c.guard.Validate(ErrSubmitParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c SubmitParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CustomerID returns the submitting customer's identifier.
func (c SubmitParcelCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CompanyID returns the handling company's identifier.
func (c SubmitParcelCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// PickupAddress returns the pickup street address.
func (c SubmitParcelCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the delivery street address.
func (c SubmitParcelCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupLocation returns the pre-resolved pickup coordinates.
func (c SubmitParcelCommand) PickupLocation() kernel.GeoPoint {
	return c.pickupLocation
}

// DeliveryLocation returns the pre-resolved delivery coordinates.
func (c SubmitParcelCommand) DeliveryLocation() kernel.GeoPoint {
	return c.deliveryLocation
}

// Weight returns the declared weight in kilograms.
func (c SubmitParcelCommand) Weight() float64 {
	return c.weight
}

// Height returns the declared height in meters.
func (c SubmitParcelCommand) Height() float64 {
	return c.height
}

// Width returns the declared width in meters.
func (c SubmitParcelCommand) Width() float64 {
	return c.width
}

// Length returns the declared length in meters.
func (c SubmitParcelCommand) Length() float64 {
	return c.length
}

func (c *SubmitParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *SubmitParcelCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitParcelCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}
