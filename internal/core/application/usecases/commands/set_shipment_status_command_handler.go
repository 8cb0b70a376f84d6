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

// SetShipmentStatusCommandHandler writes the target status unconditionally. Administrators
// are expected to serialize their own edits per shipment.
type SetShipmentStatusCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewSetShipmentStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) SetShipmentStatusCommandHandler {
	return SetShipmentStatusCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h SetShipmentStatusCommandHandler) Handle(ctx context.Context, command SetShipmentStatusCommand) (_ *shipment.Shipment, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "SetShipmentStatus",
		attribute.String("shipment.id", command.ShipmentID().String()),
		attribute.String("shipment.target", command.Target().String()))
	defer func() { tracing.EndSpan(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	sh, err := repo.Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	from, err := sh.SetStatus(command.Target(), now)
	if err != nil {
		return nil, err
	}
	if err = repo.UpdateStatus(ctx, sh); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	owner := sh.ClientID()
	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.ShipmentStatusSet,
		EntityType: activity.EntityShipment,
		EntityID:   sh.ID(),
		Label:      sh.TrackingCode(),
		ActorID:    command.ActorID(),
		Recipient:  &owner,
		From:       from.String(),
		To:         sh.Status().String(),
		At:         now,
	})

	return sh, nil
}
