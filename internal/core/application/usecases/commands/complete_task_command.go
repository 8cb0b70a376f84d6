package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/guard"
)

var ErrCompleteTaskCommandIsNotConstructed = errors.New(
	"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
)

// CompleteTaskCommand finishes a task on behalf of its holder.
type CompleteTaskCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteTaskCommand(taskID, operatorID kernel.UUID) (CompleteTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), operatorID.Validate()); err != nil {
		return CompleteTaskCommand{}, err
	}
	return CompleteTaskCommand{taskID: taskID, operatorID: operatorID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

func (c CompleteTaskCommand) TaskID() kernel.UUID { return c.taskID }
func (c CompleteTaskCommand) OperatorID() kernel.UUID { return c.operatorID }
