package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/guard"
)

var ErrClaimTaskCommandIsNotConstructed = errors.New(
	"ClaimTaskCommand must be created via NewClaimTaskCommand constructor",
)

// ClaimTaskCommand asks for operatorID to take a PENDING task.
type ClaimTaskCommand struct {
	taskID     kernel.UUID
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimTaskCommand(taskID, operatorID kernel.UUID) (ClaimTaskCommand, error) {
	if err := errors.Join(taskID.Validate(), operatorID.Validate()); err != nil {
		return ClaimTaskCommand{}, err
	}
	return ClaimTaskCommand{taskID: taskID, operatorID: operatorID, guard: guard.NewConstructorGuard()}, nil
}

func (c ClaimTaskCommand) Validate() error {
	return c.guard.Validate(ErrClaimTaskCommandIsNotConstructed)
}

func (c ClaimTaskCommand) TaskID() kernel.UUID { return c.taskID }
func (c ClaimTaskCommand) OperatorID() kernel.UUID { return c.operatorID }
