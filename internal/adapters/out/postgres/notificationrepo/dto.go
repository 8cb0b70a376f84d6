// Package notificationrepo stores the append-only user inbox and the relay cursor.
package notificationrepo

import (
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// NotificationDTO is one inbox row. Seq is a store-assigned, strictly increasing sequence
// that feed subscribers and the relay use as a resume position. Rows commit in Seq order
// (see Notify).
type NotificationDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq        int64      `gorm:"autoIncrement;uniqueIndex;index:idx_notifications_user_seq,priority:2;not null"`
	UserID     uuid.UUID  `gorm:"type:uuid;index:idx_notifications_user_seq,priority:1;not null"`
	Title      string     `gorm:"size:255;not null"`
	Message    string     `gorm:"type:text"`
	Type       string     `gorm:"size:32;not null"`
	EntityType string     `gorm:"size:16;not null"`
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time  `gorm:"not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// RelayCursorDTO remembers the last sequence number a relay has published.
type RelayCursorDTO struct {
	Name      string `gorm:"size:64;primaryKey"`
	Seq       int64  `gorm:"not null"`
	UpdatedAt time.Time
}

func (RelayCursorDTO) TableName() string {
	return "relay_cursors"
}

func fromDomain(n activity.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID().Bytes(),
		UserID:     n.UserID().Bytes(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       string(n.Type()),
		EntityType: string(n.EntityType()),
		EntityID:   kernel.PtrBytes(n.EntityID()),
		CreatedAt:  n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (activity.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return activity.Notification{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return activity.Notification{}, err
	}
	entityID, err := kernel.UUIDFromPtr(dto.EntityID)
	if err != nil {
		return activity.Notification{}, err
	}

	return activity.RestoreNotification(id, dto.Seq, userID, dto.Title, dto.Message,
		activity.NotificationType(dto.Type), activity.EntityType(dto.EntityType), entityID, dto.CreatedAt.UTC())
}
