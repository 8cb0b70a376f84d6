package commands

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CompleteTaskCommandHandler completes a task and releases its station slot in the same
// unit of work. Anyone but the current holder gets task.ErrNotHolder.
type CompleteTaskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewCompleteTaskCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h CompleteTaskCommandHandler) Handle(ctx context.Context, command CompleteTaskCommand) (_ *task.Task, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "CompleteTask",
		attribute.String("task.id", command.TaskID().String()),
		attribute.String("operator.id", command.OperatorID().String()))
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
	if err = t.Complete(command.OperatorID(), now); err != nil {
		return nil, err
	}

	completed, err := tasks.Complete(ctx, t)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, task.ErrNotHolder
	}

	if stationID := t.StationID(); stationID != nil {
		if err = uow.StationRepository().Release(ctx, *stationID); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.TaskCompleted,
		EntityType: activity.EntityTask,
		EntityID:   t.ID(),
		Label:      t.Title(),
		ActorID:    command.OperatorID(),
		From:       task.InProgress.String(),
		To:         t.Status().String(),
		At:         now,
	})

	return t, nil
}
