package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListStationsQueryIsNotConstructed = errors.New(
		"ListStationsQuery must be created via NewListStationsQuery constructor",
	)
)

// ListStationsQuery lists every station, optionally only those in one status.
// The station count of a prep center is small, so there is no paging.
type ListStationsQuery struct {
	status *station.Status

	guard guard.ConstructorGuard
}

func NewListStationsQuery(status *station.Status) (ListStationsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListStationsQuery{}, err
		}
	}

	return ListStationsQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStationsQuery) Status() *station.Status {
	return q.status
}

func (q ListStationsQuery) Validate() error {
	return q.guard.Validate(ErrListStationsQueryIsNotConstructed)
}
