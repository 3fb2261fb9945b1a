package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions are strictly linear, with no skipping and no regression:
//
//	Pending ──> Loading ──> InTransit ──> Completed
//
// Completed is terminal; reaching it is the only point in the normal
// lifecycle where the vehicle's reserved capacity is released.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending means the shipment is open for consolidation: newly accepted
	// parcels at the same warehouse may still join it.
	Pending

	// Loading means the driver started loading; attached parcels become Loaded.
	Loading

	// InTransit means the shipment departed; attached parcels become Dispatched.
	InTransit

	// Completed means the shipment finished; attached parcels become
	// Delivered and the vehicle capacity is released. Terminal.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Loading:   "Loading",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Loading:   "Loading",
		InTransit: "InTransit",
		Completed: "Completed",
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
	return s == Completed
}

// CanTransitionTo reports whether next follows the current status linearly.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	return next == s+1
}

// TransitionTo advances the status to next. Fails unless next is exactly the
// successor of the current status in the linear lifecycle.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s does not follow %s", next.String(), s.String()),
		)
	}
	return next, nil
}

// StatusFromString parses a status from its lowercase wire representation
// (pending, loading, in_transit, completed).
func StatusFromString(s string) (Status, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "loading":
		return Loading, nil
	case "in_transit":
		return InTransit, nil
	case "completed":
		return Completed, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid shipment status", s))
	}
}
