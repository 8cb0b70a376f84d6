package jobs

import (
	"context"
	"log/slog"
	"time"

	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/core/domain/model/kernel"
)

type staleTaskLister interface {
	Handle(ctx context.Context, query queries.ListStaleTasksQuery) ([]queries.TaskResponse, error)
}

// StaleTaskReportJob logs tasks that have been IN_PROGRESS for longer than threshold.
// Nothing is reclaimed; the report is for supervisors.
type StaleTaskReportJob struct {
	lister    staleTaskLister
	threshold time.Duration
	clock     kernel.Clock
	logger    *slog.Logger
}

func NewStaleTaskReportJob(lister staleTaskLister, threshold time.Duration, clock kernel.Clock, logger *slog.Logger) *StaleTaskReportJob {
	return &StaleTaskReportJob{
		lister:    lister,
		threshold: threshold,
		clock:     clock,
		logger:    logger.With("component", "stale_task_report_job"),
	}
}

func (j *StaleTaskReportJob) Name() string { return "stale_task_report" }

func (j *StaleTaskReportJob) Run(ctx context.Context) error {
	now := j.clock.Now()
	query, err := queries.NewListStaleTasksQuery(now.Add(-j.threshold))
	if err != nil {
		return err
	}

	stale, err := j.lister.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, t := range stale {
		attrs := []any{
			"task_id", t.ID.String(),
			"title", t.Title,
			"priority", t.Priority.String(),
			"in_progress_for", now.Sub(t.UpdatedAt).Round(time.Minute).String(),
		}
		if t.AssigneeID != nil {
			attrs = append(attrs, "assignee_id", t.AssigneeID.String())
		}
		if t.StationID != nil {
			attrs = append(attrs, "station_id", t.StationID.String())
		}
		j.logger.WarnContext(ctx, "stale task", attrs...)
	}
	if len(stale) > 0 {
		j.logger.InfoContext(ctx, "stale task report", "count", len(stale), "threshold", j.threshold.String())
	}
	return nil
}
