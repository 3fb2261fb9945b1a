package commands

import (
	"context"

	"logistics/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for vehicle
// registration. The declared capacity pair is checked against the configured
// capacity policy before the vehicle enters the fleet.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	policy     vehicle.CapacityPolicy
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
// The policy decides whether declared capacities must match the standard
// table for the vehicle type or merely fall within bounds.
func NewCreateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	policy vehicle.CapacityPolicy,
) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the vehicle registration command.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.ValidateCapacity(cmd.VehicleType(), cmd.MaxWeight(), cmd.MaxVolume()); err != nil {
		return nil, err
	}

	newVehicle, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.CompanyID(),
		cmd.WarehouseID(),
		cmd.VehicleNumber(),
		cmd.VehicleType(),
		cmd.MaxWeight(),
		cmd.MaxVolume(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newVehicle, nil
}
