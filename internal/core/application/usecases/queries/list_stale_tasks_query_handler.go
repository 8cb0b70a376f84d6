package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListStaleTasksQueryHandler struct {
	db *gorm.DB
}

func NewListStaleTasksQueryHandler(db *gorm.DB) ListStaleTasksQueryHandler {
	return ListStaleTasksQueryHandler{db: db}
}

// Handle returns the stale tasks, oldest first.
func (h ListStaleTasksQueryHandler) Handle(ctx context.Context, query ListStaleTasksQuery) ([]TaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE status = 'IN_PROGRESS' AND updated_at < ?
		ORDER BY updated_at, id
	`, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]TaskResponse, 0)
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
