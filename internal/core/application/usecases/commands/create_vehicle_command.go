package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a vehicle in a
// company's fleet, optionally stationed at a warehouse.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	companyID   kernel.UUID
	warehouseID *kernel.UUID

	vehicleNumber string
	vehicleType   string
	maxWeight     float64
	maxVolume     float64

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Number, type, and capacity validation happens in the vehicle aggregate and
// the configured capacity policy.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	companyID kernel.UUID,
	warehouseID *kernel.UUID,
	vehicleNumber string,
	vehicleType string,
	maxWeight float64,
	maxVolume float64,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		maxWeight:     maxWeight,
		maxVolume:     maxVolume,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setCompanyID(companyID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier assigned to the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// CompanyID returns the identifier of the owning company.
func (c CreateVehicleCommand) CompanyID() kernel.UUID {
	return c.companyID
}

// WarehouseID returns the home warehouse identifier, or nil if unassigned.
func (c CreateVehicleCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

// VehicleNumber returns the registration number.
func (c CreateVehicleCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the vehicle type name.
func (c CreateVehicleCommand) VehicleType() string {
	return c.vehicleType
}

// MaxWeight returns the declared maximum weight capacity.
func (c CreateVehicleCommand) MaxWeight() float64 {
	return c.maxWeight
}

// MaxVolume returns the declared maximum volume capacity.
func (c CreateVehicleCommand) MaxVolume() float64 {
	return c.maxVolume
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}

func (c *CreateVehicleCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID == nil {
		return nil
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
