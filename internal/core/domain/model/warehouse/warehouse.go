// Package warehouse contains the Warehouse aggregate. A warehouse is a fixed
// company-owned facility; its location never changes after creation, which is
// what makes nearest-warehouse resolution a pure computation.
package warehouse

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a warehouse without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when attempting to create a warehouse without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

// Warehouse represents a storage facility owned by a company.
//
// Invariants:
//   - Belongs to exactly one company
//   - Location is immutable once created
type Warehouse struct {
	id        kernel.UUID
	companyID kernel.UUID
	name      string
	address   string
	location  kernel.GeoPoint

	isConstructed bool
}

// NewWarehouse creates a new Warehouse with the specified parameters.
// All parameters are validated; errors are aggregated.
func NewWarehouse(
	id kernel.UUID,
	companyID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (*Warehouse, error) {
	w := &Warehouse{
		isConstructed: true,
	}

	if err := errors.Join(
		w.setID(id),
		w.setCompanyID(companyID),
		w.setName(name),
		w.setAddress(address),
		w.setLocation(location),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a Warehouse aggregate from persistent storage.
func RestoreWarehouse(
	id kernel.UUID,
	companyID kernel.UUID,
	name string,
	address string,
	location kernel.GeoPoint,
) (*Warehouse, error) {
	return NewWarehouse(id, companyID, name, address, location)
}

// Validate ensures the Warehouse was properly constructed through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// CompanyID returns the identifier of the owning company.
func (w *Warehouse) CompanyID() kernel.UUID {
	return w.companyID
}

// Name returns the warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Address returns the warehouse street address.
func (w *Warehouse) Address() string {
	return w.address
}

// Location returns the warehouse's geographic position.
func (w *Warehouse) Location() kernel.GeoPoint {
	return w.location
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	w.companyID = companyID
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Warehouse) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	w.address = address
	return nil
}

func (w *Warehouse) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}
