package vehicle

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleNumberIsRequired is returned when attempting to create a vehicle without a registration number.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicleNumber")
	// ErrVehicleTypeIsRequired is returned when attempting to create a vehicle without a type.
	ErrVehicleTypeIsRequired = errs.NewValueIsRequiredError("vehicleType")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrInsufficientCapacity is returned by Reserve when the remaining weight or
	// volume capacity cannot accommodate the requested load.
	ErrInsufficientCapacity = errors.New("insufficient remaining vehicle capacity")
	// ErrCapacityExceeded is returned by ReserveTotal when the requested load
	// exceeds the vehicle's maximum weight or volume capacity.
	ErrCapacityExceeded = errors.New("vehicle capacity exceeded")
)

// Vehicle represents a transport vehicle with a fixed capacity pair and a
// mutable load pair. It is the bookkeeping aggregate of the capacity ledger.
//
// Invariants (hold at all times):
//   - 0 ≤ currentWeight ≤ maxWeight
//   - 0 ≤ currentVolume ≤ maxVolume
//
// The load pair is mutated only by Reserve, ReserveTotal, and Release, and
// only inside the transaction that also updates the shipment and parcels the
// reservation serves.
type Vehicle struct {
	id            kernel.UUID
	companyID     kernel.UUID
	warehouseID   *kernel.UUID
	vehicleNumber string
	vehicleType   string

	maxWeight     float64
	maxVolume     float64
	currentWeight float64
	currentVolume float64

	isConstructed bool
}

// NewVehicle creates a new Vehicle with zero current load.
//
// Parameters:
//   - id: Unique identifier for the vehicle
//   - companyID: Owning company
//   - warehouseID: Home warehouse, nil if the vehicle is not stationed yet
//   - vehicleNumber: Registration number (must be non-empty)
//   - vehicleType: Vehicle type name (must be non-empty)
//   - maxWeight, maxVolume: Fixed capacity pair (must be positive)
func NewVehicle(
	id kernel.UUID,
	companyID kernel.UUID,
	warehouseID *kernel.UUID,
	vehicleNumber string,
	vehicleType string,
	maxWeight float64,
	maxVolume float64,
) (*Vehicle, error) {
	v := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setCompanyID(companyID),
		v.setWarehouseID(warehouseID),
		v.setVehicleNumber(vehicleNumber),
		v.setVehicleType(vehicleType),
		v.setMaxCapacity(maxWeight, maxVolume),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its current load pair.
func RestoreVehicle(
	id kernel.UUID,
	companyID kernel.UUID,
	warehouseID *kernel.UUID,
	vehicleNumber string,
	vehicleType string,
	maxWeight float64,
	maxVolume float64,
	currentWeight float64,
	currentVolume float64,
) (*Vehicle, error) {
	v, err := NewVehicle(id, companyID, warehouseID, vehicleNumber, vehicleType, maxWeight, maxVolume)
	if err != nil {
		return nil, err
	}

	if currentWeight < 0 || currentWeight > maxWeight {
		return nil, errs.NewValueIsOutOfRangeError("currentWeight", currentWeight, 0, maxWeight)
	}
	if currentVolume < 0 || currentVolume > maxVolume {
		return nil, errs.NewValueIsOutOfRangeError("currentVolume", currentVolume, 0, maxVolume)
	}

	v.currentWeight = currentWeight
	v.currentVolume = currentVolume
	return v, nil
}

// Validate ensures the Vehicle was properly constructed through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// CompanyID returns the identifier of the owning company.
func (v *Vehicle) CompanyID() kernel.UUID {
	return v.companyID
}

// WarehouseID returns the home warehouse identifier, or nil if unassigned.
func (v *Vehicle) WarehouseID() *kernel.UUID {
	return v.warehouseID
}

// VehicleNumber returns the registration number.
func (v *Vehicle) VehicleNumber() string {
	return v.vehicleNumber
}

// VehicleType returns the vehicle type name.
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// MaxWeight returns the fixed maximum weight capacity.
func (v *Vehicle) MaxWeight() float64 {
	return v.maxWeight
}

// MaxVolume returns the fixed maximum volume capacity.
func (v *Vehicle) MaxVolume() float64 {
	return v.maxVolume
}

// CurrentWeight returns the currently reserved weight.
func (v *Vehicle) CurrentWeight() float64 {
	return v.currentWeight
}

// CurrentVolume returns the currently reserved volume.
func (v *Vehicle) CurrentVolume() float64 {
	return v.currentVolume
}

// RemainingWeight returns the weight capacity still available for reservation.
func (v *Vehicle) RemainingWeight() float64 {
	return v.maxWeight - v.currentWeight
}

// RemainingVolume returns the volume capacity still available for reservation.
func (v *Vehicle) RemainingVolume() float64 {
	return v.maxVolume - v.currentVolume
}

// CanFit reports whether the remaining capacity accommodates the given load
// in both dimensions.
func (v *Vehicle) CanFit(weight float64, volume float64) bool {
	return v.RemainingWeight() >= weight && v.RemainingVolume() >= volume
}

// FitsTotal reports whether the given load fits the vehicle's full capacity,
// ignoring the current load. Used by manual shipment creation, which loads a
// vehicle from empty.
func (v *Vehicle) FitsTotal(weight float64, volume float64) bool {
	return v.maxWeight >= weight && v.maxVolume >= volume
}

// Reserve atomically increments the current load by the given weight and
// volume. Fails with ErrInsufficientCapacity unless both remaining dimensions
// accommodate the load; on failure the load pair is unchanged.
func (v *Vehicle) Reserve(weight float64, volume float64) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validateLoad(weight, volume); err != nil {
		return err
	}

	if !v.CanFit(weight, volume) {
		return ErrInsufficientCapacity
	}

	v.currentWeight += weight
	v.currentVolume += volume
	return nil
}

// ReserveTotal sets aside capacity for a manually composed shipment. The load
// is checked against the vehicle's full capacity rather than the remaining
// capacity, then added to the current load. Fails with ErrCapacityExceeded if
// the load does not fit the capacity pair.
func (v *Vehicle) ReserveTotal(weight float64, volume float64) error {
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validateLoad(weight, volume); err != nil {
		return err
	}

	if !v.FitsTotal(weight, volume) {
		return ErrCapacityExceeded
	}

	v.currentWeight += weight
	v.currentVolume += volume
	return nil
}

// Release atomically decrements the current load by the given weight and
// volume, used when a shipment completes. A release must never drive either
// field negative; if it would, the field is clamped to zero and Release
// returns clamped=true so the caller can flag the accounting fault. The
// operation still completes with the clamped values.
func (v *Vehicle) Release(weight float64, volume float64) (clamped bool, err error) {
	if err = v.Validate(); err != nil {
		return false, err
	}
	if err = validateLoad(weight, volume); err != nil {
		return false, err
	}

	v.currentWeight -= weight
	v.currentVolume -= volume

	if v.currentWeight < 0 {
		v.currentWeight = 0
		clamped = true
	}
	if v.currentVolume < 0 {
		v.currentVolume = 0
		clamped = true
	}

	return clamped, nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setCompanyID(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}
	v.companyID = companyID
	return nil
}

func (v *Vehicle) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID == nil {
		return nil
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	v.warehouseID = warehouseID
	return nil
}

func (v *Vehicle) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}
	v.vehicleNumber = vehicleNumber
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setMaxCapacity(maxWeight float64, maxVolume float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidError("maxWeight")
	}
	if maxVolume <= 0 {
		return errs.NewValueIsInvalidError("maxVolume")
	}
	v.maxWeight = maxWeight
	v.maxVolume = maxVolume
	return nil
}

func validateLoad(weight float64, volume float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	if volume < 0 {
		return errs.NewValueIsInvalidError("volume")
	}
	return nil
}
