// Package activityrepo stores the append-only audit trail.
package activityrepo

import (
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type EntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Action     string     `gorm:"type:text;not null"`
	EntityType string     `gorm:"size:16;index:idx_activity_entity,priority:1;not null"`
	EntityID   *uuid.UUID `gorm:"type:uuid;index:idx_activity_entity,priority:2"`
	CreatedAt  time.Time  `gorm:"index;not null"`
}

func (EntryDTO) TableName() string {
	return "activity_logs"
}

func fromDomain(e activity.Entry) EntryDTO {
	return EntryDTO{
		ID:         e.ID().Bytes(),
		ActorID:    e.ActorID().Bytes(),
		Action:     e.Action(),
		EntityType: string(e.EntityType()),
		EntityID:   kernel.PtrBytes(e.EntityID()),
		CreatedAt:  e.CreatedAt(),
	}
}
