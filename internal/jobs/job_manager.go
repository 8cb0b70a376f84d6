package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Job is one periodic unit of background work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Schedule binds a job to its cron expression (seconds field included).
type Schedule struct {
	Spec string
	Job  Job
}

// JobManager coordinates all scheduled jobs in the application.
// Runs of the same job never overlap; a tick that arrives while the previous run is still
// going is skipped.
type JobManager struct {
	cron      *cron.Cron
	schedules []Schedule
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewJobManager(logger *slog.Logger, schedules ...Schedule) *JobManager {
	logger = logger.With("component", "jobs")
	ctx, cancel := context.WithCancel(context.Background())
	return &JobManager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger{logger}),
			cron.WithChain(cron.Recover(cronLogger{logger}), cron.SkipIfStillRunning(cronLogger{logger})),
		),
		schedules: schedules,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// StartAll registers every job and starts the scheduler.
// Returns an error if any schedule expression is invalid; nothing runs in that case.
func (jm *JobManager) StartAll() error {
	for _, s := range jm.schedules {
		job := s.Job
		_, err := jm.cron.AddFunc(s.Spec, func() {
			if err := job.Run(jm.ctx); err != nil && jm.ctx.Err() == nil {
				jm.logger.ErrorContext(jm.ctx, "job failed", "job", job.Name(), "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s job: %w", job.Name(), err)
		}
		jm.logger.Info("job scheduled", "job", job.Name(), "spec", s.Spec)
	}

	jm.cron.Start()
	return nil
}

// StopAll cancels running jobs and waits for them to return.
func (jm *JobManager) StopAll() {
	jm.cancel()
	<-jm.cron.Stop().Done()
	jm.logger.Info("jobs stopped")
}

// cronLogger routes the scheduler's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
