package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// A driver is available iff they have no shipment in a non-terminal status;
// availability queries join against shipments to answer that under one
// snapshot.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetForCompany retrieves a driver by id only if they belong to the company.
	GetForCompany(ctx context.Context, id kernel.UUID, companyID kernel.UUID) (*driver.Driver, error)

	// GetFirstAvailable retrieves the first driver (ascending id) of the
	// company with no shipment in Pending, Loading, or InTransit status.
	// Returns errs.ErrObjectNotFound-wrapped error when every driver is busy.
	GetFirstAvailable(ctx context.Context, companyID kernel.UUID) (*driver.Driver, error)
}
