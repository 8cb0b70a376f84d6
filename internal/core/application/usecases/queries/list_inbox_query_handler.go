package queries

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListInboxQueryHandler struct {
	db *gorm.DB
}

func NewListInboxQueryHandler(db *gorm.DB) ListInboxQueryHandler {
	return ListInboxQueryHandler{db: db}
}

func (h ListInboxQueryHandler) Handle(ctx context.Context, query ListInboxQuery) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, seq, title, message, type, entity_type, entity_id, created_at
		FROM notifications
		WHERE user_id = ? AND seq > ?
		ORDER BY seq
		LIMIT ?
	`, query.UserID().Bytes(), query.AfterSeq(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationResponse, 0)
	for rows.Next() {
		var n NotificationResponse
		var id uuid.UUID
		var entityID uuid.NullUUID
		var kind, entityType string

		if err = rows.Scan(&id, &n.Seq, &n.Title, &n.Message, &kind, &entityType, &entityID, &n.CreatedAt); err != nil {
			return nil, err
		}
		if n.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if n.EntityID, err = toOptionalUUID(entityID); err != nil {
			return nil, err
		}
		n.Type = activity.NotificationType(kind)
		n.EntityType = activity.EntityType(entityType)
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
