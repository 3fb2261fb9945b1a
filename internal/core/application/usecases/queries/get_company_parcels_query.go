// Package queries contains read-side operations of the CQRS split.
// Query handlers bypass the aggregates and read projection-friendly rows
// straight from the database with raw SQL.
package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetCompanyParcelsQueryIsNotConstructed = errors.New(
		"GetCompanyParcelsQuery must be created via NewGetCompanyParcelsQuery constructor",
	)
)

// GetCompanyParcelsQuery retrieves every parcel handled by a company, in all
// lifecycle states, for the staff dashboard.
type GetCompanyParcelsQuery struct {
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompanyParcelsQuery creates a query scoped to the given company.
func NewGetCompanyParcelsQuery(companyID kernel.UUID) (GetCompanyParcelsQuery, error) {
	if err := companyID.Validate(); err != nil {
		return GetCompanyParcelsQuery{}, err
	}

	return GetCompanyParcelsQuery{
		companyID: companyID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompanyParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyParcelsQueryIsNotConstructed)
}

// CompanyID returns the identifier of the company whose parcels are listed.
func (q GetCompanyParcelsQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// GetCompanyParcelsQueryResponse represents one parcel row in the company
// listing. Optional references stay nil until assignment happens.
type GetCompanyParcelsQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Status          string
	Weight          float64
	Volume          float64
	QuotedPrice     float64
	PickupAddress   string
	DeliveryAddress string
	WarehouseID     *kernel.UUID
	ShipmentID      *kernel.UUID
}
