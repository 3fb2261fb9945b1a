package commands

import (
	"context"

	"logistics/internal/core/domain/model/parcel"
)

// MaxSubmittableVolume is the largest parcel volume, in cubic meters, the
// network handles. Oversized parcels are recorded and immediately rejected
// so the customer keeps a trace of the refused request.
const MaxSubmittableVolume float64 = 500

// Result messages surfaced to the submitting customer.
const (
	parcelSubmittedMessage      = "Parcel submitted and awaiting review"
	parcelVolumeExceededMessage = "Parcel volume exceeds the maximum we can handle"
)

// SubmitParcelResult reports the outcome of a parcel submission: the persisted
// parcel with its computed volume and quoted price, and a customer-facing
// message.
type SubmitParcelResult struct {
	Parcel  *parcel.Parcel
	Message string
}

// SubmitParcelCommandHandler handles the business logic for parcel submission.
// Computes the derived volume and quoted price and records the parcel as
// Pending, or as Rejected when the volume exceeds the handling limit.
type SubmitParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewSubmitParcelCommandHandler creates a handler for parcel submission.
func NewSubmitParcelCommandHandler(uowFactory ParcelUoWFactory) SubmitParcelCommandHandler {
	return SubmitParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel submission command.
// The parcel is persisted in both outcomes: Pending when it is serviceable,
// Rejected when its volume exceeds MaxSubmittableVolume.
func (h *SubmitParcelCommandHandler) Handle(ctx context.Context, cmd SubmitParcelCommand) (SubmitParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitParcelResult{}, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.CustomerID(),
		cmd.CompanyID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupLocation(),
		cmd.DeliveryLocation(),
		cmd.Weight(),
		cmd.Height(),
		cmd.Width(),
		cmd.Length(),
	)
	if err != nil {
		return SubmitParcelResult{}, err
	}

	message := parcelSubmittedMessage
	if newParcel.Volume() > MaxSubmittableVolume {
		if err = newParcel.Reject(); err != nil {
			return SubmitParcelResult{}, err
		}
		message = parcelVolumeExceededMessage
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SubmitParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return SubmitParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitParcelResult{}, err
	}

	return SubmitParcelResult{Parcel: newParcel, Message: message}, nil
}
