package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var ErrCreateTaskCommandIsNotConstructed = errors.New(
	"CreateTaskCommand must be created via NewCreateTaskCommand constructor",
)

// CreateTaskCommand creates a PENDING task, optionally bound to a station, linked to a
// shipment, or reserved for an operator.
type CreateTaskCommand struct {
	spec    task.Spec
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateTaskCommand(spec task.Spec, actorID kernel.UUID) (CreateTaskCommand, error) {
	var titleErr error
	if spec.Title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if err := errors.Join(actorID.Validate(), titleErr); err != nil {
		return CreateTaskCommand{}, err
	}
	return CreateTaskCommand{spec: spec, actorID: actorID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateTaskCommandIsNotConstructed)
}

func (c CreateTaskCommand) Spec() task.Spec { return c.spec }
func (c CreateTaskCommand) ActorID() kernel.UUID { return c.actorID }
