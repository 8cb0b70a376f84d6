package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CancelTaskCommandHandler cancels a PENDING or IN_PROGRESS task. A task that was holding
// a station slot releases it in the same unit of work. The previous assignee, if any, is
// notified after commit.
type CancelTaskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewCancelTaskCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) CancelTaskCommandHandler {
	return CancelTaskCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h CancelTaskCommandHandler) Handle(ctx context.Context, command CancelTaskCommand) (_ *task.Task, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "CancelTask", attribute.String("task.id", command.TaskID().String()))
	defer func() { tracing.EndSpan(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tasks := uow.TaskRepository()
	t, err := tasks.Get(ctx, command.TaskID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	from, err := t.Cancel(now)
	if err != nil {
		return nil, err
	}

	cancelled, err := tasks.Cancel(ctx, t, from)
	if err != nil {
		return nil, err
	}
	if !cancelled {
		return nil, errs.NewInvalidStateErrorWithCause("task", t.ID().String(), from.String(), "cancel", ErrConcurrentUpdate)
	}

	if stationID := t.StationID(); from == task.InProgress && stationID != nil {
		if err = uow.StationRepository().Release(ctx, *stationID); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.TaskCancelled,
		EntityType: activity.EntityTask,
		EntityID:   t.ID(),
		Label:      t.Title(),
		ActorID:    command.ActorID(),
		Recipient:  t.AssigneeID(),
		From:       from.String(),
		To:         t.Status().String(),
		At:         now,
	})

	return t, nil
}
