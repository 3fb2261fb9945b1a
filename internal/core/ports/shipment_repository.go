package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate, including its parcel associations.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetOwned retrieves a shipment visible to the actor: scoped to the
	// company, and additionally to the driver when driverID is non-nil.
	// The row is locked for update, since callers mutate status and totals.
	GetOwned(ctx context.Context, id kernel.UUID, companyID kernel.UUID, driverID *kernel.UUID) (*shipment.Shipment, error)

	// FindConsolidationCandidate retrieves the first Pending shipment of the
	// company at the warehouse whose vehicle has remaining capacity for the
	// given load. Candidates are ordered by ascending shipment id; the
	// matched row is locked for update. Returns errs.ErrObjectNotFound-wrapped
	// error when no candidate exists.
	FindConsolidationCandidate(
		ctx context.Context,
		companyID kernel.UUID,
		warehouseID kernel.UUID,
		weight float64,
		volume float64,
	) (*shipment.Shipment, error)

	// ExistsActiveForDriver reports whether the driver has a shipment in a
	// non-terminal status (Pending, Loading, InTransit).
	ExistsActiveForDriver(ctx context.Context, driverID kernel.UUID) (bool, error)
}
