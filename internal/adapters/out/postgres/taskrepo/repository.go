package taskrepo

import (
	"context"
	"errors"

	"prepcenter/internal/adapters/out/postgres/pgerrs"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
//
// Every state change is a single UPDATE whose WHERE clause restates the precondition the
// domain already checked against the row it read. PostgreSQL re-evaluates that clause
// against the latest committed row version, so when two transactions race only one
// matches and the loser sees zero affected rows.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Wrap("add task", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("task", id.String())
		}
		return nil, pgerrs.Wrap("get task", err)
	}

	return toDomain(dto)
}

// Claim persists a claimed task: PENDING and either unreserved or reserved for the same
// operator. It reports false when the row no longer satisfies that.
func (r *GormTaskRepository) Claim(ctx context.Context, aggregate *task.Task) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	assignee := aggregate.AssigneeID()
	if assignee == nil {
		return false, errs.NewValueIsRequiredError("assigneeId")
	}

	result := r.db.WithContext(ctx).Model(&TaskDTO{}).
		Where("id = ? AND status = ? AND (assignee_id IS NULL OR assignee_id = ?)",
			aggregate.ID().Bytes(), task.Pending.String(), assignee.Bytes()).
		Updates(map[string]any{
			"status":      aggregate.Status().String(),
			"assignee_id": assignee.Bytes(),
			"updated_at":  aggregate.UpdatedAt(),
		})
	return r.applied(aggregate, result, "claim task")
}

// Complete persists a completion made by the current holder.
func (r *GormTaskRepository) Complete(ctx context.Context, aggregate *task.Task) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	holder := aggregate.AssigneeID()
	if holder == nil {
		return false, errs.NewValueIsRequiredError("assigneeId")
	}

	result := r.db.WithContext(ctx).Model(&TaskDTO{}).
		Where("id = ? AND status = ? AND assignee_id = ?",
			aggregate.ID().Bytes(), task.InProgress.String(), holder.Bytes()).
		Updates(map[string]any{
			"status":       aggregate.Status().String(),
			"completed_at": aggregate.CompletedAt(),
			"updated_at":   aggregate.UpdatedAt(),
		})
	return r.applied(aggregate, result, "complete task")
}

// Cancel persists a cancellation while the stored status is still from.
func (r *GormTaskRepository) Cancel(ctx context.Context, aggregate *task.Task, from task.Status) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&TaskDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), from.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	return r.applied(aggregate, result, "cancel task")
}

func (r *GormTaskRepository) applied(aggregate *task.Task, result *gorm.DB, operation string) (bool, error) {
	if result.Error != nil {
		return false, pgerrs.Wrap(operation, result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}
