package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/pkg/guard"
)

var ErrUpdateStationCommandIsNotConstructed = errors.New(
	"UpdateStationCommand must be created via NewUpdateStationCommand constructor",
)

// UpdateStationCommand edits a station's profile. It can never set the load directly.
type UpdateStationCommand struct {
	stationID kernel.UUID
	profile   station.Profile
	actorID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateStationCommand(stationID kernel.UUID, profile station.Profile, actorID kernel.UUID) (UpdateStationCommand, error) {
	if err := errors.Join(stationID.Validate(), actorID.Validate()); err != nil {
		return UpdateStationCommand{}, err
	}
	return UpdateStationCommand{
		stationID: stationID,
		profile:   profile,
		actorID:   actorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStationCommandIsNotConstructed)
}

func (c UpdateStationCommand) StationID() kernel.UUID { return c.stationID }
func (c UpdateStationCommand) Profile() station.Profile { return c.profile }
func (c UpdateStationCommand) ActorID() kernel.UUID { return c.actorID }
