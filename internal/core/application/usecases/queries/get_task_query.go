package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrGetTaskQueryIsNotConstructed = errors.New("GetTaskQuery must be created via NewGetTaskQuery constructor")
)

type GetTaskQuery struct {
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTaskQuery(taskID kernel.UUID) (GetTaskQuery, error) {
	if err := taskID.Validate(); err != nil {
		return GetTaskQuery{}, errs.NewValueIsRequiredErrorWithCause("taskID", err)
	}

	return GetTaskQuery{taskID: taskID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTaskQuery) TaskID() kernel.UUID {
	return q.taskID
}

func (q GetTaskQuery) Validate() error {
	return q.guard.Validate(ErrGetTaskQueryIsNotConstructed)
}
