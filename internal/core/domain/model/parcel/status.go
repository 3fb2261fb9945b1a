package parcel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Stored ──> Loaded ──> Dispatched ──> Delivered
//	          │
//	          └──> Rejected (terminal)
//
// A parcel may remain in Accepted indefinitely while it waits for a driver or
// vehicle. The Stored -> Loaded -> Dispatched -> Delivered transitions happen
// only as a side effect of the owning shipment's status changing; no parcel
// may skip a state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after a customer submits the parcel.
	// Company staff decide whether to accept or reject it.
	Pending

	// Accepted means staff approved the parcel and a warehouse was assigned.
	// The parcel waits here until shipment capacity becomes available.
	Accepted

	// Rejected means staff declined the parcel. Terminal.
	Rejected

	// Stored means the parcel is attached to a shipment at its warehouse.
	Stored

	// Loaded means the owning shipment started loading.
	Loaded

	// Dispatched means the owning shipment is in transit.
	Dispatched

	// Delivered means the owning shipment completed. Terminal.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Accepted:   "Accepted",
		Rejected:   "Rejected",
		Stored:     "Stored",
		Loaded:     "Loaded",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Accepted:   "Accepted",
		Rejected:   "Rejected",
		Stored:     "Stored",
		Loaded:     "Loaded",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered
}

// Accept transitions the status to Accepted. Only Pending parcels can be
// accepted; an already-processed parcel is a conflict, not a silent success.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, Accepted)
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected. Only Pending parcels can be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, Rejected)
	}
	return Rejected, nil
}

// Store transitions the status to Stored when the parcel joins a shipment.
func (s Status) Store() (Status, error) {
	if s != Accepted {
		return 0, invalidTransition(s, Stored)
	}
	return Stored, nil
}

// Load transitions the status to Loaded when the owning shipment starts loading.
func (s Status) Load() (Status, error) {
	if s != Stored {
		return 0, invalidTransition(s, Loaded)
	}
	return Loaded, nil
}

// Dispatch transitions the status to Dispatched when the owning shipment departs.
func (s Status) Dispatch() (Status, error) {
	if s != Loaded {
		return 0, invalidTransition(s, Dispatched)
	}
	return Dispatched, nil
}

// Deliver transitions the status to Delivered when the owning shipment completes.
func (s Status) Deliver() (Status, error) {
	if s != Dispatched {
		return 0, invalidTransition(s, Delivered)
	}
	return Delivered, nil
}

func invalidTransition(from Status, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to transition to %s", from.String(), to.String()),
	)
}
