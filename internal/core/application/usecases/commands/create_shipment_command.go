package commands

import (
	"errors"
	"strings"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// ItemInput is one declared item line of a new shipment.
type ItemInput struct {
	ProductName string
	SKU         string
	Quantity    int
	PrepType    string
}

// CreateShipmentCommand registers a client's inbound consignment in DRAFT.
type CreateShipmentCommand struct {
	actorID      kernel.UUID
	clientID     kernel.UUID
	trackingCode string
	origin       string
	destination  string
	weight       decimal.Decimal
	notes        string
	items        []ItemInput

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(
	actorID kernel.UUID,
	clientID kernel.UUID,
	trackingCode string,
	origin string,
	destination string,
	weight decimal.Decimal,
	notes string,
	items []ItemInput,
) (CreateShipmentCommand, error) {
	var trackingErr, itemsErr error
	if strings.TrimSpace(trackingCode) == "" {
		trackingErr = errs.NewValueIsRequiredError("trackingCode")
	}
	if len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	if err := errors.Join(actorID.Validate(), clientID.Validate(), trackingErr, itemsErr); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		actorID:      actorID,
		clientID:     clientID,
		trackingCode: trackingCode,
		origin:       origin,
		destination:  destination,
		weight:       weight,
		notes:        notes,
		items:        append([]ItemInput(nil), items...),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ActorID() kernel.UUID { return c.actorID }
func (c CreateShipmentCommand) ClientID() kernel.UUID { return c.clientID }
func (c CreateShipmentCommand) TrackingCode() string { return c.trackingCode }
func (c CreateShipmentCommand) Origin() string { return c.origin }
func (c CreateShipmentCommand) Destination() string { return c.destination }
func (c CreateShipmentCommand) Weight() decimal.Decimal { return c.weight }
func (c CreateShipmentCommand) Notes() string { return c.notes }
func (c CreateShipmentCommand) Items() []ItemInput { return append([]ItemInput(nil), c.items...) }
