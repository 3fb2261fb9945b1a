// Package warehouserepo provides data transfer objects and mapping functions for warehouse persistence.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
type WarehouseDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`

	Name     string
	Address  string
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for warehouse entities.
// Overrides GORM's default naming convention to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// GeoPointDTO represents the embedded warehouse coordinates.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        aggregate.ID().Bytes(),
		CompanyID: aggregate.CompanyID().Bytes(),
		Name:      aggregate.Name(),
		Address:   aggregate.Address(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate using RestoreWarehouse.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, companyID, dto.Name, dto.Address, location)
}
