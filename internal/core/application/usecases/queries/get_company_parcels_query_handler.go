package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCompanyParcelsQueryHandler lists a company's parcels from the database.
type GetCompanyParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetCompanyParcelsQueryHandler creates a handler for company parcel listings.
// Requires a GORM database connection for query execution.
func NewGetCompanyParcelsQueryHandler(db *gorm.DB) GetCompanyParcelsQueryHandler {
	return GetCompanyParcelsQueryHandler{db: db}
}

// Handle executes the query to list every parcel of the company.
// Results are sorted by parcel ID for consistent output.
func (h GetCompanyParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetCompanyParcelsQuery,
) ([]GetCompanyParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetCompanyParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			weight,
			volume,
			quoted_price,
			pickup_address,
			delivery_address,
			warehouse_id,
			shipment_id
		FROM parcels
		WHERE company_id = ?
		ORDER BY id
	`, query.CompanyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetCompanyParcelsQueryResponse
			id          uuid.UUID
			customerID  uuid.UUID
			status      int
			warehouseID uuid.NullUUID
			shipmentID  uuid.NullUUID
		)

		err = rows.Scan(
			&id,
			&customerID,
			&status,
			&resp.Weight,
			&resp.Volume,
			&resp.QuotedPrice,
			&resp.PickupAddress,
			&resp.DeliveryAddress,
			&warehouseID,
			&shipmentID,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		resp.Status = parcel.Status(status).String()

		if resp.WarehouseID, err = optionalUUID(warehouseID); err != nil {
			return nil, err
		}
		if resp.ShipmentID, err = optionalUUID(shipmentID); err != nil {
			return nil, err
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

// optionalUUID converts a nullable database UUID into a kernel reference.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
