// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Indexed by company and status for the intake queries, and by shipment for
// the lockstep lifecycle updates.
type ParcelDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	CompanyID  uuid.UUID `gorm:"type:uuid;index"`

	PickupAddress   string
	DeliveryAddress string
	Pickup          GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery        GeoPointDTO `gorm:"embedded;embeddedPrefix:delivery_"`

	Weight      float64
	Height      float64
	Width       float64
	Length      float64
	Volume      float64
	QuotedPrice float64

	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	Status      int        `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// GeoPointDTO represents embedded geographic coordinates within the parcel table.
type GeoPointDTO struct {
	Latitude  float64
	Longitude float64
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		CompanyID:       aggregate.CompanyID().Bytes(),
		PickupAddress:   aggregate.PickupAddress(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Pickup: GeoPointDTO{
			Latitude:  aggregate.PickupLocation().Latitude(),
			Longitude: aggregate.PickupLocation().Longitude(),
		},
		Delivery: GeoPointDTO{
			Latitude:  aggregate.DeliveryLocation().Latitude(),
			Longitude: aggregate.DeliveryLocation().Longitude(),
		},
		Weight:      aggregate.Weight(),
		Height:      aggregate.Height(),
		Width:       aggregate.Width(),
		Length:      aggregate.Length(),
		Volume:      aggregate.Volume(),
		QuotedPrice: aggregate.QuotedPrice(),
		WarehouseID: optionalID(aggregate.WarehouseID()),
		ShipmentID:  optionalID(aggregate.ShipmentID()),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewGeoPoint(dto.Delivery.Latitude, dto.Delivery.Longitude)
	if err != nil {
		return nil, err
	}

	warehouseID, err := optionalKernelID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	shipmentID, err := optionalKernelID(dto.ShipmentID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, customerID, companyID,
		dto.PickupAddress, dto.DeliveryAddress,
		pickup, delivery,
		dto.Weight, dto.Height, dto.Width, dto.Length,
		dto.Volume, dto.QuotedPrice,
		warehouseID, shipmentID,
		parcel.Status(dto.Status),
	)
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
