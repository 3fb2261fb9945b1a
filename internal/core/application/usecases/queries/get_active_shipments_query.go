package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetActiveShipmentsQueryIsNotConstructed = errors.New(
		"GetActiveShipmentsQuery must be created via NewGetActiveShipmentsQuery constructor",
	)
)

// GetActiveShipmentsQuery retrieves a company's shipments that have not yet
// completed, for dispatch monitoring.
type GetActiveShipmentsQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveShipmentsQuery creates a query scoped to the given company.
func NewGetActiveShipmentsQuery(companyID kernel.UUID) (GetActiveShipmentsQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetActiveShipmentsQuery{}, err
	}

	return GetActiveShipmentsQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentsQueryIsNotConstructed)
}

// CompanyID returns the identifier of the company whose shipments are listed.
func (q GetActiveShipmentsQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetActiveShipmentsQueryResponse represents one active shipment row with its
// resource references, load totals, and attached parcel count.
type GetActiveShipmentsQueryResponse struct {
	ID          kernel.UUID
	DriverID    kernel.UUID
	VehicleID   kernel.UUID
	WarehouseID kernel.UUID
	Status      string
	TotalWeight float64
	TotalVolume float64
	ParcelCount int
}
