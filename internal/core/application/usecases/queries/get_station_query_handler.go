package queries

import (
	"context"

	"prepcenter/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetStationQueryHandler struct {
	db *gorm.DB
}

func NewGetStationQueryHandler(db *gorm.DB) GetStationQueryHandler {
	return GetStationQueryHandler{db: db}
}

func (h GetStationQueryHandler) Handle(ctx context.Context, query GetStationQuery) (StationResponse, error) {
	if err := query.Validate(); err != nil {
		return StationResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+stationColumns+` FROM stations WHERE id = ?`, query.StationID().Bytes(),
	).Rows()
	if err != nil {
		return StationResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return StationResponse{}, err
		}
		return StationResponse{}, errs.NewObjectNotFoundError("station", query.StationID())
	}

	return scanStation(rows)
}
