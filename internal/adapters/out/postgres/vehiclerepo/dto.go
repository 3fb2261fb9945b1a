// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// Vehicle rows carry the capacity ledger, so this repository is where the
// row-locking reads for capacity mutations live.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// Indexed by company and warehouse for the suitable-vehicle scan.
type VehicleDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID  `gorm:"type:uuid;index"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`

	VehicleNumber string `gorm:"uniqueIndex"`
	VehicleType   string

	MaxWeight     float64
	MaxVolume     float64
	CurrentWeight float64
	CurrentVolume float64
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var warehouseID *uuid.UUID
	if id := aggregate.WarehouseID(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	return VehicleDTO{
		ID:            aggregate.ID().Bytes(),
		CompanyID:     aggregate.CompanyID().Bytes(),
		WarehouseID:   warehouseID,
		VehicleNumber: aggregate.VehicleNumber(),
		VehicleType:   aggregate.VehicleType(),
		MaxWeight:     aggregate.MaxWeight(),
		MaxVolume:     aggregate.MaxVolume(),
		CurrentWeight: aggregate.CurrentWeight(),
		CurrentVolume: aggregate.CurrentVolume(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, warehouseErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if warehouseErr != nil {
			return nil, warehouseErr
		}

		warehouseID = &wID
	}

	return vehicle.RestoreVehicle(
		id, companyID, warehouseID,
		dto.VehicleNumber, dto.VehicleType,
		dto.MaxWeight, dto.MaxVolume,
		dto.CurrentWeight, dto.CurrentVolume,
	)
}
