package queries

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListActivityQueryHandler struct {
	db *gorm.DB
}

func NewListActivityQueryHandler(db *gorm.DB) ListActivityQueryHandler {
	return ListActivityQueryHandler{db: db}
}

// Handle returns the most recent entries first.
func (h ListActivityQueryHandler) Handle(ctx context.Context, query ListActivityQuery) ([]ActivityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	f := query.Filter()

	var entityType any
	if f.EntityType != nil {
		entityType = string(*f.EntityType)
	}
	entityID := optionalBytes(f.EntityID)
	actorID := optionalBytes(f.ActorID)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, actor_id, action, entity_type, entity_id, created_at
		FROM activity_logs
		WHERE (CAST(? AS text) IS NULL OR entity_type = ?)
			AND (CAST(? AS uuid) IS NULL OR entity_id = ?)
			AND (CAST(? AS uuid) IS NULL OR actor_id = ?)
		ORDER BY created_at DESC, id
		LIMIT ?
	`, entityType, entityType, entityID, entityID, actorID, actorID, f.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ActivityResponse, 0)
	for rows.Next() {
		var e ActivityResponse
		var id, actor uuid.UUID
		var entity uuid.NullUUID
		var kind string

		if err = rows.Scan(&id, &actor, &e.Action, &kind, &entity, &e.CreatedAt); err != nil {
			return nil, err
		}
		if e.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if e.ActorID, err = toUUID(actor); err != nil {
			return nil, err
		}
		if e.EntityID, err = toOptionalUUID(entity); err != nil {
			return nil, err
		}
		e.EntityType = activity.EntityType(kind)
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
