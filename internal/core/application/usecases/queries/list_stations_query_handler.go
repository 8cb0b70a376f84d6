package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStationsQueryHandler struct {
	db *gorm.DB
}

func NewListStationsQueryHandler(db *gorm.DB) ListStationsQueryHandler {
	return ListStationsQueryHandler{db: db}
}

// Handle returns stations sorted by name.
func (h ListStationsQueryHandler) Handle(ctx context.Context, query ListStationsQuery) ([]StationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var status any
	if s := query.Status(); s != nil {
		status = s.String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+stationColumns+`
		FROM stations
		WHERE CAST(? AS text) IS NULL OR status = ?
		ORDER BY name, id
	`, status, status).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]StationResponse, 0)
	for rows.Next() {
		s, scanErr := scanStation(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		stations = append(stations, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}
