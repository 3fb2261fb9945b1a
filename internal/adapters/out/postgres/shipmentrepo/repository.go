package shipmentrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its parcel associations to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(links) > 0 {
		if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. New parcel associations
// are inserted; existing rows are untouched since the parcel set only grows.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(links) > 0 {
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&links).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.withLinks(ctx, dto)
}

// GetOwned retrieves a shipment scoped to the company and, when driverID is
// non-nil, to that driver. The row is locked for update.
func (r *GormShipmentRepository) GetOwned(
	ctx context.Context,
	id kernel.UUID,
	companyID kernel.UUID,
	driverID *kernel.UUID,
) (*shipment.Shipment, error) {
	if err := errors.Join(id.Validate(), companyID.Validate()); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND company_id = ?", id.Bytes(), companyID.Bytes())
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		query = query.Where("driver_id = ?", driverID.Bytes())
	}

	var dto ShipmentDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.withLinks(ctx, dto)
}

// FindConsolidationCandidate retrieves the first pending shipment of the
// company at the warehouse whose vehicle still has room for the given load.
// The capacity predicate runs against the vehicle row inside the query, and
// the matched shipment row is locked for update.
func (r *GormShipmentRepository) FindConsolidationCandidate(
	ctx context.Context,
	companyID kernel.UUID,
	warehouseID kernel.UUID,
	weight float64,
	volume float64,
) (*shipment.Shipment, error) {
	if err := errors.Join(companyID.Validate(), warehouseID.Validate()); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "shipments"}}).
		Joins("JOIN vehicles ON vehicles.id = shipments.vehicle_id").
		Where("shipments.company_id = ? AND shipments.warehouse_id = ? AND shipments.status = ?",
			companyID.Bytes(), warehouseID.Bytes(), shipment.Pending).
		Where("(vehicles.max_weight - vehicles.current_weight) >= ?", weight).
		Where("(vehicles.max_volume - vehicles.current_volume) >= ?", volume).
		Order("shipments.id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", "consolidation candidate")
		}
		return nil, err
	}

	return r.withLinks(ctx, dto)
}

// ExistsActiveForDriver reports whether the driver leads a non-completed shipment.
func (r *GormShipmentRepository) ExistsActiveForDriver(ctx context.Context, driverID kernel.UUID) (bool, error) {
	if err := driverID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("driver_id = ? AND status != ?", driverID.Bytes(), shipment.Completed).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// withLinks loads the parcel associations for the shipment row and restores
// the aggregate.
func (r *GormShipmentRepository) withLinks(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	var links []ShipmentParcelDTO
	err := r.db.WithContext(ctx).
		Order("parcel_id").
		Find(&links, "shipment_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}
