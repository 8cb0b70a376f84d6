package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/pkg/guard"
)

var ErrSetShipmentStatusCommandIsNotConstructed = errors.New(
	"SetShipmentStatusCommand must be created via NewSetShipmentStatusCommand constructor",
)

// SetShipmentStatusCommand is the administrative override. It accepts any valid status
// regardless of the current one and is deliberately kept apart from the guarded advance.
type SetShipmentStatusCommand struct {
	shipmentID kernel.UUID
	target     shipment.Status
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetShipmentStatusCommand(shipmentID kernel.UUID, target shipment.Status, actorID kernel.UUID) (SetShipmentStatusCommand, error) {
	if err := errors.Join(shipmentID.Validate(), target.Validate(), actorID.Validate()); err != nil {
		return SetShipmentStatusCommand{}, err
	}
	return SetShipmentStatusCommand{
		shipmentID: shipmentID,
		target:     target,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetShipmentStatusCommandIsNotConstructed)
}

func (c SetShipmentStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c SetShipmentStatusCommand) Target() shipment.Status { return c.target }
func (c SetShipmentStatusCommand) ActorID() kernel.UUID { return c.actorID }
