package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListTasksQueryHandler struct {
	db *gorm.DB
}

func NewListTasksQueryHandler(db *gorm.DB) ListTasksQueryHandler {
	return ListTasksQueryHandler{db: db}
}

func (h ListTasksQueryHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	f := query.Filter()

	var status any
	if f.Status != nil {
		status = f.Status.String()
	}
	assignee := optionalBytes(f.AssigneeID)
	stationID := optionalBytes(f.StationID)
	shipmentID := optionalBytes(f.ShipmentID)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE (CAST(? AS text) IS NULL OR status = ?)
			AND (CAST(? AS uuid) IS NULL OR assignee_id = ?)
			AND (CAST(? AS uuid) IS NULL OR station_id = ?)
			AND (CAST(? AS uuid) IS NULL OR shipment_id = ?)
		ORDER BY CASE priority
				WHEN 'URGENT' THEN 0
				WHEN 'HIGH' THEN 1
				WHEN 'MEDIUM' THEN 2
				ELSE 3
			END,
			created_at, id
		LIMIT ? OFFSET ?
	`, status, status, assignee, assignee, stationID, stationID, shipmentID, shipmentID, f.Limit, f.Offset).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]TaskResponse, 0)
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
