package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery fetches one shipment together with its item lines.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//	shipment, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}

	return GetShipmentQuery{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}
