package jobs

import (
	"context"
	"log/slog"

	"prepcenter/internal/core/application/usecases/queries"
	"prepcenter/internal/pkg/metrics"
)

type stationLoadAuditor interface {
	Handle(ctx context.Context, query queries.GetStationLoadAuditQuery) ([]queries.StationLoadAuditResponse, error)
}

// StationLoadAuditJob compares each station's recorded load with the tasks holding a slot
// there. It only reports: drift goes to the log and the drift gauge, and the load itself is
// left for an operator to correct.
type StationLoadAuditJob struct {
	auditor stationLoadAuditor
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewStationLoadAuditJob(auditor stationLoadAuditor, m *metrics.Metrics, logger *slog.Logger) *StationLoadAuditJob {
	return &StationLoadAuditJob{
		auditor: auditor,
		metrics: m,
		logger:  logger.With("component", "station_load_audit_job"),
	}
}

func (j *StationLoadAuditJob) Name() string { return "station_load_audit" }

func (j *StationLoadAuditJob) Run(ctx context.Context) error {
	audit, err := j.auditor.Handle(ctx, queries.NewGetStationLoadAuditQuery())
	if err != nil {
		return err
	}

	drifting := 0
	for _, s := range audit {
		drift := s.Drift()
		j.metrics.SetStationLoadDrift(s.StationID.String(), drift)
		if drift == 0 {
			continue
		}
		drifting++
		j.logger.WarnContext(ctx, "station load drift",
			"station_id", s.StationID.String(),
			"station", s.Name,
			"recorded_load", s.RecordedLoad,
			"active_tasks", s.ActiveTasks,
			"drift", drift)
	}

	j.logger.DebugContext(ctx, "station load audit finished", "stations", len(audit), "drifting", drifting)
	return nil
}
