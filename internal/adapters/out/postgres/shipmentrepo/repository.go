package shipmentrepo

import (
	"context"
	"errors"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the shipment together with its item lines.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Wrap("add shipment", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("sku, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, pgerrs.Wrap("get shipment", err)
	}

	return toDomain(dto)
}

// UpdateStatusIf writes the aggregate's status only while the stored status still equals
// expected. It reports false when another writer moved the shipment first.
func (r *GormShipmentRepository) UpdateStatusIf(
	ctx context.Context,
	aggregate *shipment.Shipment,
	expected shipment.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return false, pgerrs.Wrap("update shipment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

// UpdateStatus overwrites the status regardless of the stored value.
func (r *GormShipmentRepository) UpdateStatus(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return pgerrs.Wrap("set shipment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
