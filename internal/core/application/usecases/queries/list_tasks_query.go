package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListTasksQueryIsNotConstructed = errors.New("ListTasksQuery must be created via NewListTasksQuery constructor")
)

// TaskFilter narrows a task listing. Every non-nil field must match.
type TaskFilter struct {
	Status     *task.Status
	AssigneeID *kernel.UUID
	StationID  *kernel.UUID
	ShipmentID *kernel.UUID
	Limit      int
	Offset     int
}

// ListTasksQuery pages through tasks ordered by priority (URGENT first) and then by age,
// which is the order operators pick work in.
type ListTasksQuery struct {
	filter TaskFilter

	guard guard.ConstructorGuard
}

func NewListTasksQuery(filter TaskFilter) (ListTasksQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListTasksQuery{}, err
		}
	}
	for name, id := range map[string]*kernel.UUID{
		"assigneeID": filter.AssigneeID,
		"stationID":  filter.StationID,
		"shipmentID": filter.ShipmentID,
	} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return ListTasksQuery{}, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}
	if filter.Offset < 0 {
		return ListTasksQuery{}, errs.NewValueIsOutOfRangeError("offset", filter.Offset, 0, nil)
	}
	filter.Limit = pageSize(filter.Limit)

	return ListTasksQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTasksQuery) Filter() TaskFilter {
	return q.filter
}

func (q ListTasksQuery) Validate() error {
	return q.guard.Validate(ErrListTasksQueryIsNotConstructed)
}
