package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Vehicle rows carry the capacity ledger, so the write-path getters take
// row-level locks: a capacity check followed by an increment must be a
// read-modify-write against the same locked row.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle by id with a FOR UPDATE row lock,
	// for capacity mutations within the current transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetFirstSuitable retrieves the first vehicle of the company stationed
	// at the warehouse whose remaining capacity accommodates the given load
	// in both dimensions. Vehicles are scanned in ascending id order (the
	// documented deterministic tie-break) and the matched row is locked for
	// update. Returns errs.ErrObjectNotFound-wrapped error when none qualify.
	GetFirstSuitable(
		ctx context.Context,
		companyID kernel.UUID,
		warehouseID kernel.UUID,
		weight float64,
		volume float64,
	) (*vehicle.Vehicle, error)
}
