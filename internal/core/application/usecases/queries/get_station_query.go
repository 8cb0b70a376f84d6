package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrGetStationQueryIsNotConstructed = errors.New(
		"GetStationQuery must be created via NewGetStationQuery constructor",
	)
)

type GetStationQuery struct {
	stationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStationQuery(stationID kernel.UUID) (GetStationQuery, error) {
	if err := stationID.Validate(); err != nil {
		return GetStationQuery{}, errs.NewValueIsRequiredErrorWithCause("stationID", err)
	}

	return GetStationQuery{stationID: stationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStationQuery) StationID() kernel.UUID {
	return q.stationID
}

func (q GetStationQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueryIsNotConstructed)
}
