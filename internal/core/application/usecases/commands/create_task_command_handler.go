package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/station"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/tracing"
)

// CreateTaskCommandHandler validates the task's references and stores it as PENDING.
//
// A named station must exist and be ACTIVE; creation does not take a capacity slot, that
// happens on claim. A named assignee receives an assignment notification after commit.
type CreateTaskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewCreateTaskCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) CreateTaskCommandHandler {
	return CreateTaskCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h CreateTaskCommandHandler) Handle(ctx context.Context, command CreateTaskCommand) (_ *task.Task, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "CreateTask")
	defer func() { tracing.EndSpan(span, err) }()

	now := h.clock.Now()
	t, err := task.NewTask(kernel.NewUUID(), command.Spec(), now)
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

	if stationID := t.StationID(); stationID != nil {
		st, getErr := uow.StationRepository().Get(ctx, *stationID)
		if getErr != nil {
			return nil, getErr
		}
		if !st.IsActive() {
			return nil, station.ErrStationInactive
		}
	}
	if shipmentID := t.ShipmentID(); shipmentID != nil {
		if _, err = uow.ShipmentRepository().Get(ctx, *shipmentID); err != nil {
			return nil, err
		}
	}

	if err = uow.TaskRepository().Add(ctx, t); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.TaskCreated,
		EntityType: activity.EntityTask,
		EntityID:   t.ID(),
		Label:      t.Title(),
		ActorID:    command.ActorID(),
		Recipient:  t.AssigneeID(),
		To:         t.Status().String(),
		At:         now,
	})

	return t, nil
}
