package commands

import (
	"context"

	"logistics/internal/core/domain/model/parcel"
)

// RejectParcelCommandHandler handles the business logic for parcel rejection.
// Rejection is terminal: the parcel never enters a warehouse or shipment.
type RejectParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewRejectParcelCommandHandler creates a handler for parcel rejection.
func NewRejectParcelCommandHandler(uowFactory ParcelUoWFactory) RejectParcelCommandHandler {
	return RejectParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel rejection command.
// Only pending parcels of the acting company qualify; anything else surfaces
// as not-found, which keeps repeated decisions on the same parcel harmless.
func (h *RejectParcelCommandHandler) Handle(ctx context.Context, cmd RejectParcelCommand) (*parcel.Parcel, error) {
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

	parcelRepo := uow.ParcelRepository()
	pendingParcel, err := parcelRepo.GetPendingForCompany(ctx, cmd.ParcelID(), cmd.CompanyID())
	if err != nil {
		return nil, err
	}

	if err = pendingParcel.Reject(); err != nil {
		return nil, err
	}

	if err = parcelRepo.Update(ctx, pendingParcel); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pendingParcel, nil
}
