package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/shipment"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AdvanceShipmentCommandHandler moves a shipment to its successor status.
//
// The write is conditional on the status that was read, so a concurrent advance or
// administrative override makes this call fail with InvalidState instead of clobbering
// the newer state.
type AdvanceShipmentCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewAdvanceShipmentCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h AdvanceShipmentCommandHandler) Handle(ctx context.Context, command AdvanceShipmentCommand) (_ *shipment.Shipment, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "AdvanceShipment", attribute.String("shipment.id", command.ShipmentID().String()))
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
	from, err := sh.Advance(now)
	if err != nil {
		return nil, err
	}

	updated, err := repo.UpdateStatusIf(ctx, sh, from)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.NewInvalidStateErrorWithCause("shipment", sh.ID().String(), from.String(), "advance", ErrConcurrentUpdate)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	owner := sh.ClientID()
	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.ShipmentAdvanced,
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
