// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Indexed by company and driver for the consolidation and availability queries.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index"`
	DriverID    uuid.UUID `gorm:"type:uuid;index"`
	VehicleID   uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index"`

	TotalWeight float64
	TotalVolume float64
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentParcelDTO represents one row of the shipment-parcel association table.
// Rows are only ever inserted: the parcel set of a shipment never shrinks.
type ShipmentParcelDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for the association rows.
func (ShipmentParcelDTO) TableName() string {
	return "shipment_parcels"
}

// fromDomain converts a shipment domain aggregate to its database
// representation plus the association rows for its parcel set.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, []ShipmentParcelDTO) {
	dto := ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		CompanyID:   aggregate.CompanyID().Bytes(),
		DriverID:    aggregate.DriverID().Bytes(),
		VehicleID:   aggregate.VehicleID().Bytes(),
		WarehouseID: aggregate.WarehouseID().Bytes(),
		TotalWeight: aggregate.TotalWeight(),
		TotalVolume: aggregate.TotalVolume(),
		Status:      int(aggregate.Status()),
	}

	links := make([]ShipmentParcelDTO, 0, len(aggregate.ParcelIDs()))
	for _, parcelID := range aggregate.ParcelIDs() {
		links = append(links, ShipmentParcelDTO{
			ShipmentID: dto.ID,
			ParcelID:   parcelID.Bytes(),
		})
	}

	return dto, links
}

// toDomain converts a database DTO and its association rows to a shipment
// domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO, links []ShipmentParcelDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		parcelID, linkErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return shipment.RestoreShipment(
		id, companyID, driverID, vehicleID, warehouseID,
		dto.TotalWeight, dto.TotalVolume,
		shipment.Status(dto.Status),
		parcelIDs,
	)
}
