package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrParcelIDsAreRequired = errs.NewValueIsRequiredError("parcelIDs")
)

// CreateShipmentCommand represents a staff request to compose a shipment
// manually: a chosen driver, vehicle, and warehouse plus an explicit set of
// accepted parcels.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	companyID   kernel.UUID
	driverID    kernel.UUID
	vehicleID   kernel.UUID
	warehouseID kernel.UUID
	parcelIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to compose a shipment manually.
// At least one parcel must be named; every identifier is validated.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	companyID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	warehouseID kernel.UUID,
	parcelIDs []kernel.UUID,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCompanyID(companyID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
		cmd.setWarehouseID(warehouseID),
		cmd.setParcelIDs(parcelIDs),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier assigned to the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// CompanyID returns the identifier of the acting company.
func (c CreateShipmentCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// DriverID returns the chosen driver's identifier.
func (c CreateShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the chosen vehicle's identifier.
func (c CreateShipmentCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// WarehouseID returns the origin warehouse identifier.
func (c CreateShipmentCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// ParcelIDs returns the identifiers of parcels to load.
func (c CreateShipmentCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CreateShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateShipmentCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateShipmentCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateShipmentCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	if len(parcelIDs) == 0 {
		return ErrParcelIDsAreRequired
	}
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.parcelIDs = parcelIDs
	return nil
}
