package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrGetStationLoadAuditQueryIsNotConstructed = errors.New(
		"GetStationLoadAuditQuery must be created via NewGetStationLoadAuditQuery constructor",
	)
)

// GetStationLoadAuditQuery compares each station's recorded load with the number of
// IN_PROGRESS tasks bound to it. The two must agree; the query only reports.
type GetStationLoadAuditQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStationLoadAuditQuery() GetStationLoadAuditQuery {
	return GetStationLoadAuditQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStationLoadAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetStationLoadAuditQueryIsNotConstructed)
}

type StationLoadAuditResponse struct {
	StationID    kernel.UUID
	Name         string
	Capacity     int
	RecordedLoad int
	ActiveTasks  int
}

// Drift is positive when the recorded load exceeds the tasks actually holding a slot.
func (r StationLoadAuditResponse) Drift() int {
	return r.RecordedLoad - r.ActiveTasks
}
