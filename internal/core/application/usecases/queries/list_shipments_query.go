package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ShipmentFilter narrows a shipment listing. Nil fields match everything.
type ShipmentFilter struct {
	ClientID *kernel.UUID
	Status   *shipment.Status
	Limit    int
	Offset   int
}

// ListShipmentsQuery pages through shipments, newest first. Clients pass their own ID
// as ClientID so that they only see what they own.
type ListShipmentsQuery struct {
	filter ShipmentFilter

	guard guard.ConstructorGuard
}

func NewListShipmentsQuery(filter ShipmentFilter) (ListShipmentsQuery, error) {
	if filter.ClientID != nil {
		if err := filter.ClientID.Validate(); err != nil {
			return ListShipmentsQuery{}, errs.NewValueIsInvalidErrorWithCause("clientID", err)
		}
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListShipmentsQuery{}, err
		}
	}
	if filter.Offset < 0 {
		return ListShipmentsQuery{}, errs.NewValueIsOutOfRangeError("offset", filter.Offset, 0, nil)
	}
	filter.Limit = pageSize(filter.Limit)

	return ListShipmentsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListShipmentsQuery) Filter() ShipmentFilter {
	return q.filter
}

func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}
