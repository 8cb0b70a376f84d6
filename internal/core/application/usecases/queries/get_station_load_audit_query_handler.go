package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetStationLoadAuditQueryHandler struct {
	db *gorm.DB
}

func NewGetStationLoadAuditQueryHandler(db *gorm.DB) GetStationLoadAuditQueryHandler {
	return GetStationLoadAuditQueryHandler{db: db}
}

// Handle returns one row per station, drifting or not.
func (h GetStationLoadAuditQueryHandler) Handle(
	ctx context.Context,
	query GetStationLoadAuditQuery,
) ([]StationLoadAuditResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.id, s.name, s.capacity, s.current_load, COUNT(t.id)
		FROM stations s
		LEFT JOIN tasks t ON t.station_id = s.id AND t.status = 'IN_PROGRESS'
		GROUP BY s.id, s.name, s.capacity, s.current_load
		ORDER BY s.name, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	audit := make([]StationLoadAuditResponse, 0)
	for rows.Next() {
		var r StationLoadAuditResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &r.Name, &r.Capacity, &r.RecordedLoad, &r.ActiveTasks); err != nil {
			return nil, err
		}
		if r.StationID, err = toUUID(id); err != nil {
			return nil, err
		}
		audit = append(audit, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return audit, nil
}
