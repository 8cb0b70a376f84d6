package ports

import (
	"context"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
)

// TaskRepository persists task aggregates. Each transition method is a single conditional
// update; a false result means the stored row no longer matched and nothing was written.
type TaskRepository interface {
	Add(ctx context.Context, aggregate *task.Task) error

	// Get returns the task or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// Claim writes IN_PROGRESS and the assignee where the stored task is PENDING and either
	// unassigned or reserved for the same assignee.
	Claim(ctx context.Context, aggregate *task.Task) (bool, error)

	// Complete writes COMPLETED and completedAt where the stored task is IN_PROGRESS and
	// held by the aggregate's assignee.
	Complete(ctx context.Context, aggregate *task.Task) (bool, error)

	// Cancel writes CANCELLED where the stored status still equals from.
	Cancel(ctx context.Context, aggregate *task.Task, from task.Status) (bool, error)
}
