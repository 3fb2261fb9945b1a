package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAllByCompany retrieves every warehouse of the company in ascending
	// id order, giving nearest-warehouse resolution a deterministic scan order.
	GetAllByCompany(ctx context.Context, companyID kernel.UUID) ([]*warehouse.Warehouse, error)
}
