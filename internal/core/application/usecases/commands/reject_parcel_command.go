package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRejectParcelCommandIsNotConstructed = errors.New(
	"RejectParcelCommand must be created via NewRejectParcelCommand constructor",
)

// RejectParcelCommand represents a staff decision to reject a pending parcel.
type RejectParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectParcelCommand creates a command to reject a pending parcel.
func NewRejectParcelCommand(parcelID kernel.UUID, companyID kernel.UUID) (RejectParcelCommand, error) {
	cmd := RejectParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCompanyID(companyID),
	); err != nil {
		return RejectParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectParcelCommand) Validate() error {
	return c.guard.Validate(ErrRejectParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being rejected.
func (c RejectParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CompanyID returns the identifier of the acting company.
func (c RejectParcelCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c *RejectParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *RejectParcelCommand) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	c.companyID = companyID
	return nil
}
