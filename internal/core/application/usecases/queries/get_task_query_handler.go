package queries

import (
	"context"

	"prepcenter/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetTaskQueryHandler struct {
	db *gorm.DB
}

func NewGetTaskQueryHandler(db *gorm.DB) GetTaskQueryHandler {
	return GetTaskQueryHandler{db: db}
}

func (h GetTaskQueryHandler) Handle(ctx context.Context, query GetTaskQuery) (TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return TaskResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, query.TaskID().Bytes()).Rows()
	if err != nil {
		return TaskResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TaskResponse{}, err
		}
		return TaskResponse{}, errs.NewObjectNotFoundError("task", query.TaskID())
	}

	return scanTask(rows)
}
