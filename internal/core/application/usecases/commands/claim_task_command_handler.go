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

// ClaimTaskCommandHandler runs the claim protocol.
//
// The status flip and the station admission share one unit of work: the conditional task
// update comes first, then the admission. If admission is refused the unit is rolled back,
// so the task is left PENDING and unassigned and the caller gets StationAtCapacity or
// StationInactive. Concurrent claimants are serialized by the conditional update; exactly
// one sees a matching row and the others get task.ErrAlreadyClaimed.
//
// Example:
//
//	cmd, _ := NewClaimTaskCommand(taskID, operatorID)
//	t, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, task.ErrAlreadyClaimed):
//	    // someone else got there first; refresh, do not retry
//	case errors.Is(err, station.ErrStationAtCapacity):
//	    // the task is still PENDING and available
//	}
type ClaimTaskCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher EventDispatcher
	clock      kernel.Clock
}

func NewClaimTaskCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	dispatcher EventDispatcher,
	clock kernel.Clock,
) ClaimTaskCommandHandler {
	return ClaimTaskCommandHandler{uowFactory: uowFactory, dispatcher: dispatcher, clock: clock}
}

func (h ClaimTaskCommandHandler) Handle(ctx context.Context, command ClaimTaskCommand) (_ *task.Task, err error) {
	if err = command.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "ClaimTask",
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
	if err = t.Claim(command.OperatorID(), now); err != nil {
		return nil, err
	}

	claimed, err := tasks.Claim(ctx, t)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, task.ErrAlreadyClaimed
	}

	if stationID := t.StationID(); stationID != nil {
		if err = uow.StationRepository().Admit(ctx, *stationID); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ctx, services.Transition{
		Kind:       services.TaskClaimed,
		EntityType: activity.EntityTask,
		EntityID:   t.ID(),
		Label:      t.Title(),
		ActorID:    command.OperatorID(),
		From:       task.Pending.String(),
		To:         t.Status().String(),
		At:         now,
	})

	return t, nil
}
