package vehicle

import (
	"errors"

	"logistics/internal/pkg/errs"
)

// ErrUnknownVehicleType is returned when a capacity policy has no entry for
// the requested vehicle type.
var ErrUnknownVehicleType = errors.New("unknown vehicle type")

// ErrCapacityMismatch is returned by the strict policy when the submitted
// capacity pair differs from the standard pair for the vehicle type.
var ErrCapacityMismatch = errors.New("capacity does not match standard for vehicle type")

// CapacityPair is a fixed (max weight, max volume) pair for a vehicle type.
type CapacityPair struct {
	MaxWeight float64
	MaxVolume float64
}

// CapacityTable maps vehicle type names to their standard capacity pairs.
// It is a pure configuration value passed into the operations that need it;
// nothing in the domain mutates it.
type CapacityTable map[string]CapacityPair

// DefaultCapacityTable returns the standard fleet capacity table.
func DefaultCapacityTable() CapacityTable {
	return CapacityTable{
		"Truck":     {MaxWeight: 10000, MaxVolume: 50},
		"Van":       {MaxWeight: 1500, MaxVolume: 15},
		"Pickup":    {MaxWeight: 1000, MaxVolume: 5},
		"Trailer":   {MaxWeight: 25000, MaxVolume: 100},
		"Box Truck": {MaxWeight: 5000, MaxVolume: 30},
	}
}

// CapacityPolicy validates the capacity pair submitted for a new vehicle.
// Two incompatible policies exist across deployments, so the choice is a
// configuration decision rather than a domain rule.
type CapacityPolicy interface {
	// ValidateCapacity checks a (type, maxWeight, maxVolume) triple and
	// returns an error when the pair is not acceptable for the type.
	ValidateCapacity(vehicleType string, maxWeight float64, maxVolume float64) error
}

// StrictTablePolicy accepts only the exact capacity pair listed in the table
// for the vehicle type.
type StrictTablePolicy struct {
	table CapacityTable
}

// NewStrictTablePolicy creates a policy bound to the given capacity table.
func NewStrictTablePolicy(table CapacityTable) StrictTablePolicy {
	return StrictTablePolicy{table: table}
}

// ValidateCapacity fails with ErrUnknownVehicleType for types missing from
// the table and ErrCapacityMismatch when the pair differs from the standard.
func (p StrictTablePolicy) ValidateCapacity(vehicleType string, maxWeight float64, maxVolume float64) error {
	expected, ok := p.table[vehicleType]
	if !ok {
		return ErrUnknownVehicleType
	}
	if maxWeight != expected.MaxWeight || maxVolume != expected.MaxVolume {
		return ErrCapacityMismatch
	}
	return nil
}

// FreeFormPolicy accepts any positive capacity pair within the configured
// upper bounds, regardless of vehicle type.
type FreeFormPolicy struct {
	maxWeight float64
	maxVolume float64
}

// NewFreeFormPolicy creates a policy with the given upper bounds.
func NewFreeFormPolicy(maxWeight float64, maxVolume float64) FreeFormPolicy {
	return FreeFormPolicy{maxWeight: maxWeight, maxVolume: maxVolume}
}

// ValidateCapacity checks the pair against (0, bound] in both dimensions.
func (p FreeFormPolicy) ValidateCapacity(_ string, maxWeight float64, maxVolume float64) error {
	if maxWeight <= 0 || maxWeight > p.maxWeight {
		return errs.NewValueIsOutOfRangeError("maxWeight", maxWeight, 0, p.maxWeight)
	}
	if maxVolume <= 0 || maxVolume > p.maxVolume {
		return errs.NewValueIsOutOfRangeError("maxVolume", maxVolume, 0, p.maxVolume)
	}
	return nil
}
