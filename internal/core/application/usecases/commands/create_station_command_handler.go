package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/tracing"
)

// CreateStationCommandHandler stores a new ACTIVE station with zero load.
type CreateStationCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewCreateStationCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) CreateStationCommandHandler {
	return CreateStationCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h CreateStationCommandHandler) Handle(ctx context.Context, command CreateStationCommand) (_ *station.Station, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "CreateStation")
	defer func() { tracing.EndSpan(span, err) }()

	now := h.clock.Now()
	s, err := station.NewStation(kernel.NewUUID(), command.Name(), command.Type(), command.Capacity(), command.OperatorID(), now)
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

	if err = uow.StationRepository().Add(ctx, s); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.StationCreated,
		EntityType: activity.EntityStation,
		EntityID:   s.ID(),
		Label:      s.Name(),
		ActorID:    command.ActorID(),
		At:         now,
	})

	return s, nil
}
