package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler lists a company's non-completed shipments
// from the database.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment listings.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to list shipments in pending, loading, or
// in_transit status. Results are sorted by shipment ID for consistent output.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.driver_id,
			s.vehicle_id,
			s.warehouse_id,
			s.status,
			s.total_weight,
			s.total_volume,
			(SELECT COUNT(*) FROM shipment_parcels sp WHERE sp.shipment_id = s.id) AS parcel_count
		FROM shipments s
		WHERE s.company_id = ? AND s.status != ?
		ORDER BY s.id
	`, query.CompanyID().Bytes(), shipment.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetActiveShipmentsQueryResponse
			id          uuid.UUID
			driverID    uuid.UUID
			vehicleID   uuid.UUID
			warehouseID uuid.UUID
			status      int
		)

		err = rows.Scan(
			&id,
			&driverID,
			&vehicleID,
			&warehouseID,
			&status,
			&resp.TotalWeight,
			&resp.TotalVolume,
			&resp.ParcelCount,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if resp.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
			return nil, err
		}
		resp.Status = shipment.Status(status).String()

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
