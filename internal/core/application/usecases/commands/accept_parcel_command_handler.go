package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
)

// ErrNoWarehouseAvailable is returned when a company accepts a parcel without
// having any warehouse to route it to. The acceptance is rolled back.
var ErrNoWarehouseAvailable = errors.New("no warehouse available for company")

// Result messages surfaced to staff after acceptance.
const (
	parcelAssignedMessage = "Parcel accepted and assigned to shipment"
	parcelWaitingMessage  = "Parcel accepted but waiting for driver/vehicle availability"
)

// AcceptParcelResult reports the outcome of accepting a parcel: the updated
// parcel, whether automatic shipment assignment succeeded, and a staff-facing
// message.
type AcceptParcelResult struct {
	Parcel       *parcel.Parcel
	AutoAssigned bool
	Message      string
}

// AcceptParcelCommandHandler handles the business logic for parcel acceptance.
// Routes the parcel to the nearest company warehouse, then immediately tries
// to place it on a shipment: consolidation into an existing pending shipment
// first, a new shipment with a free driver and suitable vehicle second.
//
// Warehouse resolution failing is a hard error that rolls the acceptance
// back. Assignment failing for lack of drivers or vehicles is not: the parcel
// stays accepted and a background retry picks it up later.
type AcceptParcelCommandHandler struct {
	uowFactory AssignmentUoWFactory
	resolver   services.WarehouseResolver
	allocator  services.ShipmentAllocator
}

// NewAcceptParcelCommandHandler creates a handler for parcel acceptance.
func NewAcceptParcelCommandHandler(uowFactory AssignmentUoWFactory) AcceptParcelCommandHandler {
	return AcceptParcelCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewWarehouseResolver(),
		allocator:  services.NewShipmentAllocator(),
	}
}

// Handle processes the parcel acceptance command.
// The whole flow runs in one transaction: warehouse resolution, status
// change, and any shipment assignment commit or roll back together.
func (h *AcceptParcelCommandHandler) Handle(ctx context.Context, cmd AcceptParcelCommand) (AcceptParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	pendingParcel, err := parcelRepo.GetPendingForCompany(ctx, cmd.ParcelID(), cmd.CompanyID())
	if err != nil {
		return AcceptParcelResult{}, err
	}

	warehouses, err := uow.WarehouseRepository().GetAllByCompany(ctx, cmd.CompanyID())
	if err != nil {
		return AcceptParcelResult{}, err
	}

	nearest, err := h.resolver.NearestWarehouse(pendingParcel.PickupLocation(), warehouses)
	if err != nil {
		if errors.Is(err, services.ErrWarehouseNotFound) {
			return AcceptParcelResult{}, ErrNoWarehouseAvailable
		}
		return AcceptParcelResult{}, err
	}

	if err = pendingParcel.Accept(nearest.ID()); err != nil {
		return AcceptParcelResult{}, err
	}

	assigned, err := assignParcelToShipment(ctx, uow, h.allocator, pendingParcel)
	if err != nil {
		return AcceptParcelResult{}, err
	}

	if err = parcelRepo.Update(ctx, pendingParcel); err != nil {
		return AcceptParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptParcelResult{}, err
	}

	message := parcelWaitingMessage
	if assigned {
		message = parcelAssignedMessage
	}

	return AcceptParcelResult{
		Parcel:       pendingParcel,
		AutoAssigned: assigned,
		Message:      message,
	}, nil
}
