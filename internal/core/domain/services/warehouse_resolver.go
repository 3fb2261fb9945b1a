package services

import (
	"errors"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// ErrWarehouseNotFound is returned when no warehouse can be resolved for a
// pickup point. This occurs only when the candidate set is empty; the caller
// must treat it as a hard failure, not a retryable condition.
var ErrWarehouseNotFound = errors.New("warehouse not found")

// WarehouseResolver is a domain service that selects the warehouse nearest to
// a pickup point by great-circle distance.
//
// Selection is deterministic: candidates are scanned in the order provided
// (repositories return them in ascending identity order) and ties keep the
// first candidate encountered.
type WarehouseResolver struct{}

// NewWarehouseResolver creates a new WarehouseResolver instance.
func NewWarehouseResolver() WarehouseResolver {
	return WarehouseResolver{}
}

// NearestWarehouse returns the candidate warehouse closest to the given
// point. Returns ErrWarehouseNotFound if the candidate set is empty, or a
// validation error if any candidate is improperly constructed.
func (r WarehouseResolver) NearestWarehouse(
	point kernel.GeoPoint,
	candidates []*warehouse.Warehouse,
) (*warehouse.Warehouse, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	var (
		nearest          *warehouse.Warehouse
		shortestDistance = math.MaxFloat64
	)

	for _, w := range candidates {
		if err := w.Validate(); err != nil {
			return nil, err
		}

		distance, err := point.DistanceTo(w.Location())
		if err != nil {
			return nil, err
		}

		if distance < shortestDistance {
			shortestDistance = distance
			nearest = w
		}
	}

	if nearest == nil {
		return nil, ErrWarehouseNotFound
	}

	return nearest, nil
}
