// Package ports defines repository and unit-of-work interfaces for the
// logistics domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Every query filters by the acting company: cross-company references are
// forbidden throughout the core.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetPendingForCompany retrieves a parcel by id only if it belongs to the
	// company and is still Pending. Already-processed parcels come back as
	// not-found, which is what makes AcceptParcel idempotent-safe.
	GetPendingForCompany(ctx context.Context, id kernel.UUID, companyID kernel.UUID) (*parcel.Parcel, error)

	// GetAcceptedByIDs retrieves the subset of the given parcels that belong
	// to the company and are in Accepted status. Callers compare the result
	// count against the request to detect unavailable parcels.
	GetAcceptedByIDs(ctx context.Context, companyID kernel.UUID, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetFirstAcceptedUnassigned retrieves the oldest parcel (lowest id) in
	// Accepted status without a shipment assignment, across all companies.
	// Used by the background assignment retry.
	GetFirstAcceptedUnassigned(ctx context.Context) (*parcel.Parcel, error)

	// GetAllByShipment retrieves every parcel attached to the given shipment,
	// in ascending id order.
	GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error)
}
