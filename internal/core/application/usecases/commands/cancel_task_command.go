package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/guard"
)

var ErrCancelTaskCommandIsNotConstructed = errors.New(
	"CancelTaskCommand must be created via NewCancelTaskCommand constructor",
)

// CancelTaskCommand is the administrative cancel of a non-terminal task.
type CancelTaskCommand struct {
	taskID  kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelTaskCommand(taskID, actorID kernel.UUID) (CancelTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), actorID.Validate()); err != nil {
		return CancelTaskCommand{}, err
	}
	return CancelTaskCommand{taskID: taskID, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelTaskCommand) Validate() error {
	return c.guard.Validate(ErrCancelTaskCommandIsNotConstructed)
}

func (c CancelTaskCommand) TaskID() kernel.UUID { return c.taskID }
func (c CancelTaskCommand) ActorID() kernel.UUID { return c.actorID }
