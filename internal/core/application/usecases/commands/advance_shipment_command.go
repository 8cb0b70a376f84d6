package commands

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand is the operator scan: move a shipment exactly one status forward.
//
// Example:
//
//	cmd, err := NewAdvanceShipmentCommand(shipmentID, operatorID)
//	if err != nil {
//	    return err
//	}
//	sh, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidState) {
//	    // already DELIVERED, or changed concurrently: re-fetch
//	}
type AdvanceShipmentCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceShipmentCommand(shipmentID, actorID kernel.UUID) (AdvanceShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return AdvanceShipmentCommand{}, err
	}
	return AdvanceShipmentCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AdvanceShipmentCommand) ActorID() kernel.UUID { return c.actorID }
