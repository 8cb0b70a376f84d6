package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CreateShipmentCommandHandler stores a new DRAFT shipment with its items.
type CreateShipmentCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewCreateShipmentCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) (_ *shipment.Shipment, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "CreateShipment", attribute.String("client.id", command.ClientID().String()))
	defer func() { tracing.EndSpan(span, err) }()

	items := make([]shipment.Item, 0, len(command.Items()))
	for _, in := range command.Items() {
		item, itemErr := shipment.NewItem(kernel.NewUUID(), in.ProductName, in.SKU, in.Quantity, in.PrepType)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	now := h.clock.Now()
	sh, err := shipment.NewShipment(kernel.NewUUID(), command.ClientID(), command.TrackingCode(),
		command.Origin(), command.Destination(), command.Weight(), command.Notes(), items, now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, sh); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.ShipmentCreated,
		EntityType: activity.EntityShipment,
		EntityID:   sh.ID(),
		Label:      sh.TrackingCode(),
		ActorID:    command.ActorID(),
		To:         sh.Status().String(),
		At:         now,
	})

	return sh, nil
}
