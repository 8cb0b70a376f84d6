package stationrepo

import (
	"context"
	"errors"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStationRepository implements ports.StationRepository using GORM.
type GormStationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStationRepository(db *gorm.DB, tracker aggregateTracker) *GormStationRepository {
	return &GormStationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStationRepository) Add(ctx context.Context, aggregate *station.Station) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Wrap("add station", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("station", id.String())
		}
		return nil, pgerrs.Wrap("get station", err)
	}

	return toDomain(dto)
}

// Admit takes one slot with a single guarded increment. When nothing matches, the row is
// re-read to tell a missing, inactive or full station apart; nothing is written in that case.
func (r *GormStationRepository) Admit(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StationDTO{}).
		Where("id = ? AND status = ? AND current_load < capacity", id.Bytes(), station.Active.String()).
		UpdateColumn("current_load", gorm.Expr("current_load + 1"))
	if result.Error != nil {
		return pgerrs.Wrap("admit to station", result.Error)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = current.CheckAdmission(); err != nil {
		return err
	}
	return station.ErrStationAtCapacity
}

// Release frees one slot. The load never drops below zero.
func (r *GormStationRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&StationDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("current_load", gorm.Expr("GREATEST(current_load - 1, 0)"))
	if result.Error != nil {
		return pgerrs.Wrap("release station slot", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("station", id.String())
	}
	return nil
}

// UpdateProfile writes the administrator-editable columns. current_load is never part of
// the update; the capacity is only accepted while it still covers the stored load.
func (r *GormStationRepository) UpdateProfile(ctx context.Context, aggregate *station.Station) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&StationDTO{}).
		Where("id = ? AND current_load <= ?", dto.ID, dto.Capacity).
		Updates(map[string]any{
			"name":        dto.Name,
			"type":        dto.Type,
			"status":      dto.Status,
			"capacity":    dto.Capacity,
			"operator_id": dto.OperatorID,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return false, pgerrs.Wrap("update station", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}
