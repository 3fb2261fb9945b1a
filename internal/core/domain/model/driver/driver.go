// Package driver contains the Driver aggregate, a company user flagged as
// able to run shipments. Availability is not a stored field: a driver is
// available exactly when no shipment of theirs is in a non-terminal status,
// which the shipment repository answers under lock.
package driver

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a company employee who can be assigned to shipments.
// At most one shipment per driver may be active at any time; that invariant
// is enforced by the shipment allocation flow, not by this aggregate.
type Driver struct {
	id        kernel.UUID
	companyID kernel.UUID
	name      string

	isConstructed bool
}

// NewDriver creates a new Driver with the specified parameters.
func NewDriver(id kernel.UUID, companyID kernel.UUID, name string) (*Driver, error) {
	d := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCompanyID(companyID),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
func RestoreDriver(id kernel.UUID, companyID kernel.UUID, name string) (*Driver, error) {
	return NewDriver(id, companyID, name)
}

// Validate ensures the Driver was properly constructed through NewDriver.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// CompanyID returns the identifier of the owning company.
func (d *Driver) CompanyID() kernel.UUID {
	return d.companyID
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	d.companyID = companyID
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}
