package commands

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler handles the business logic for shipment
// lifecycle progression. Advancing the shipment moves every attached parcel
// in lockstep and, on completion, returns the shipment's load to the vehicle.
//
// All of it happens in one transaction: a shipment is never observable in a
// status its parcels have not caught up with.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	logger     *slog.Logger
}

// NewUpdateShipmentStatusCommandHandler creates a handler for shipment status updates.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	logger *slog.Logger,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the shipment status update command.
// Status moves strictly forward: pending to loading to in_transit to
// completed. Parcels follow the shipment (loaded, dispatched, delivered) and
// completion releases the vehicle's reserved weight and volume.
func (h *UpdateShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateShipmentStatusCommand,
) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.GetOwned(ctx, cmd.ShipmentID(), cmd.CompanyID(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = s.TransitionTo(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = h.advanceParcels(ctx, uow, s, cmd.NewStatus()); err != nil {
		return nil, err
	}

	if cmd.NewStatus() == shipment.Completed {
		if err = h.releaseVehicle(ctx, uow, s); err != nil {
			return nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// advanceParcels moves every parcel attached to the shipment to the lifecycle
// stage matching the shipment's new status.
func (h *UpdateShipmentStatusCommandHandler) advanceParcels(
	ctx context.Context,
	uow ShipmentUoW,
	s *shipment.Shipment,
	newStatus shipment.Status,
) error {
	parcelRepo := uow.ParcelRepository()
	parcels, err := parcelRepo.GetAllByShipment(ctx, s.ID())
	if err != nil {
		return err
	}

	for _, p := range parcels {
		switch newStatus {
		case shipment.Loading:
			err = p.MarkLoaded()
		case shipment.InTransit:
			err = p.MarkDispatched()
		case shipment.Completed:
			err = p.MarkDelivered()
		default:
			continue
		}
		if err != nil {
			return err
		}

		if err = parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return nil
}

// releaseVehicle returns the shipment's total load to its vehicle. A release
// that would drive the ledger negative is clamped in the domain and logged
// here as a data integrity fault; the completion itself still goes through.
func (h *UpdateShipmentStatusCommandHandler) releaseVehicle(
	ctx context.Context,
	uow ShipmentUoW,
	s *shipment.Shipment,
) error {
	vehicleRepo := uow.VehicleRepository()
	v, err := vehicleRepo.GetForUpdate(ctx, s.VehicleID())
	if err != nil {
		return err
	}

	clamped, err := v.Release(s.TotalWeight(), s.TotalVolume())
	if err != nil {
		return err
	}
	if clamped {
		h.logger.Warn("vehicle load clamped to zero during release",
			slog.String("vehicle_id", v.ID().String()),
			slog.String("shipment_id", s.ID().String()),
			slog.Float64("released_weight", s.TotalWeight()),
			slog.Float64("released_volume", s.TotalVolume()),
		)
	}

	return vehicleRepo.Update(ctx, v)
}
