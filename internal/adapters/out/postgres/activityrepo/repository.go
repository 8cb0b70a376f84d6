package activityrepo

import (
	"context"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/domain/model/activity"

	"gorm.io/gorm"
)

// GormActivityRepository implements ports.ActivityLogger.
type GormActivityRepository struct {
	db *gorm.DB
}

func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

func (r *GormActivityRepository) Append(ctx context.Context, e activity.Entry) error {
	dto := fromDomain(e)
	return pgerrs.Wrap("append activity", r.db.WithContext(ctx).Create(&dto).Error)
}
