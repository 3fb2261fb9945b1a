package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// Sentinel outcomes of the assignment retry. Both are expected conditions
// the scheduler suppresses, not faults.
var (
	// ErrNoParcelsWaiting is returned when no accepted parcel is waiting for a shipment.
	ErrNoParcelsWaiting = errors.New("no parcels waiting for assignment")
	// ErrNoResourcesAvailable is returned when the oldest waiting parcel still
	// cannot be placed for lack of a free driver or suitable vehicle.
	ErrNoResourcesAvailable = errors.New("no driver or vehicle available for waiting parcel")
)

// AssignPendingParcelsCommandHandler retries shipment assignment for parcels
// that were accepted while no driver or vehicle was free. One parcel, the
// oldest waiting one, is processed per run; the scheduler provides the loop.
type AssignPendingParcelsCommandHandler struct {
	uowFactory AssignmentUoWFactory
	allocator  services.ShipmentAllocator
}

// NewAssignPendingParcelsCommandHandler creates a handler for assignment retries.
func NewAssignPendingParcelsCommandHandler(uowFactory AssignmentUoWFactory) AssignPendingParcelsCommandHandler {
	return AssignPendingParcelsCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewShipmentAllocator(),
	}
}

// Handle processes the assignment retry command.
// Runs the same consolidation algorithm as acceptance for the oldest waiting
// parcel. Returns ErrNoParcelsWaiting or ErrNoResourcesAvailable when there
// is nothing to do; both leave the database untouched.
func (h *AssignPendingParcelsCommandHandler) Handle(ctx context.Context, cmd AssignPendingParcelsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	waitingParcel, err := parcelRepo.GetFirstAcceptedUnassigned(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoParcelsWaiting
		}
		return err
	}

	assigned, err := assignParcelToShipment(ctx, uow, h.allocator, waitingParcel)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrNoResourcesAvailable
	}

	if err = parcelRepo.Update(ctx, waitingParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
