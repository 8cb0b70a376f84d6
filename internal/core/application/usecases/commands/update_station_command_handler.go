package commands

import (
	"context"
	"math"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// UpdateStationCommandHandler applies a profile edit. The write is conditional on the
// stored load fitting under the new capacity, so a claim admitted concurrently turns a
// capacity cut into ValueIsOutOfRange instead of breaking the load invariant.
type UpdateStationCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewUpdateStationCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) UpdateStationCommandHandler {
	return UpdateStationCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h UpdateStationCommandHandler) Handle(ctx context.Context, command UpdateStationCommand) (_ *station.Station, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "UpdateStation", attribute.String("station.id", command.StationID().String()))
	defer func() { tracing.EndSpan(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StationRepository()
	s, err := repo.Get(ctx, command.StationID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = s.Update(command.Profile(), now); err != nil {
		return nil, err
	}

	updated, err := repo.UpdateProfile(ctx, s)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause("capacity", s.Capacity(), "current load", math.MaxInt32, ErrConcurrentUpdate)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.StationUpdated,
		EntityType: activity.EntityStation,
		EntityID:   s.ID(),
		Label:      s.Name(),
		ActorID:    command.ActorID(),
		To:         s.Status().String(),
		At:         now,
	})

	return s, nil
}
