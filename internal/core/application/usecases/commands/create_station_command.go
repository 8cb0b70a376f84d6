package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/pkg/guard"
)

var ErrCreateStationCommandIsNotConstructed = errors.New(
	"CreateStationCommand must be created via NewCreateStationCommand constructor",
)

type CreateStationCommand struct {
	name       string
	kind       station.Type
	capacity   int
	operatorID *kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateStationCommand(
	name string,
	kind station.Type,
	capacity int,
	operatorID *kernel.UUID,
	actorID kernel.UUID,
) (CreateStationCommand, error) {
	if err := errors.Join(kind.Validate(), actorID.Validate()); err != nil {
		return CreateStationCommand{}, err
	}
	return CreateStationCommand{
		name:       name,
		kind:       kind,
		capacity:   capacity,
		operatorID: operatorID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStationCommand) Validate() error {
	return c.guard.Validate(ErrCreateStationCommandIsNotConstructed)
}

func (c CreateStationCommand) Name() string { return c.name }
func (c CreateStationCommand) Type() station.Type { return c.kind }
func (c CreateStationCommand) Capacity() int { return c.capacity }
func (c CreateStationCommand) OperatorID() *kernel.UUID { return c.operatorID }
func (c CreateStationCommand) ActorID() kernel.UUID { return c.actorID }
