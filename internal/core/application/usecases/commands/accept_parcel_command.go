package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAcceptParcelCommandIsNotConstructed = errors.New(
	"AcceptParcelCommand must be created via NewAcceptParcelCommand constructor",
)

// AcceptParcelCommand represents a staff decision to accept a pending parcel
// on behalf of a company.
type AcceptParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptParcelCommand creates a command to accept a pending parcel.
func NewAcceptParcelCommand(parcelID kernel.UUID, companyID kernel.UUID) (AcceptParcelCommand, error) {
	cmd := AcceptParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return AcceptParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptParcelCommand) Validate() error {
	return c.guard.Validate(ErrAcceptParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being accepted.
func (c AcceptParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CompanyID returns the identifier of the acting company.
func (c AcceptParcelCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *AcceptParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *AcceptParcelCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}
