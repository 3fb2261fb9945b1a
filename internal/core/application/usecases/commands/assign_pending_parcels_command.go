package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

// AssignPendingParcelsCommand triggers a retry of shipment assignment for
// accepted parcels still waiting for resources. The batch operation runs
// across all companies since the scheduler has no tenant context.
//
// Example:
//
//	cmd := NewAssignPendingParcelsCommand()
//	handler := NewAssignPendingParcelsCommandHandler(uowFactory)
//
//	// Run periodically so freed drivers and vehicles get picked up
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("assignment retry failed: %v", err)
//	}
type AssignPendingParcelsCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAssignPendingParcelsCommandIsNotConstructed = errors.New(
		"AssignPendingParcelsCommand must be created via NewAssignPendingParcelsCommand constructor",
	)
)

// NewAssignPendingParcelsCommand creates a command to retry parcel assignment.
// This is a parameterless command that processes waiting parcels oldest first.
func NewAssignPendingParcelsCommand() AssignPendingParcelsCommand {
	command := AssignPendingParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPendingParcelsCommandIsNotConstructed if validation fails.
func (c *AssignPendingParcelsCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingParcelsCommandIsNotConstructed)
}
