package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/metrics"
)

const (
	relayCursorName   = "kafka-notifications"
	defaultRelayBatch = 100
)

// NotificationRelayJob forwards inbox notifications to the downstream publisher in
// sequence order. The cursor is saved only after a batch has been accepted, so delivery is
// at-least-once and a failed batch is retried from the same place on the next run.
type NotificationRelayJob struct {
	source    ports.NotificationSource
	publisher ports.NotificationPublisher
	batchSize int
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewNotificationRelayJob(
	source ports.NotificationSource,
	publisher ports.NotificationPublisher,
	batchSize int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *NotificationRelayJob {
	if batchSize <= 0 {
		batchSize = defaultRelayBatch
	}
	return &NotificationRelayJob{
		source:    source,
		publisher: publisher,
		batchSize: batchSize,
		metrics:   m,
		logger:    logger.With("component", "notification_relay_job"),
	}
}

func (j *NotificationRelayJob) Name() string { return "notification_relay" }

// Run drains everything published since the saved cursor.
func (j *NotificationRelayJob) Run(ctx context.Context) error {
	cursor, err := j.source.LoadCursor(ctx, relayCursorName)
	if err != nil {
		return fmt.Errorf("loading relay cursor: %w", err)
	}

	for ctx.Err() == nil {
		batch, err := j.source.ListAfter(ctx, cursor, j.batchSize)
		if err != nil {
			return fmt.Errorf("reading notifications after %d: %w", cursor, err)
		}
		if len(batch) == 0 {
			return nil
		}

		start := time.Now()
		err = j.publisher.Publish(ctx, batch)
		j.metrics.RecordRelay(len(batch), err == nil, time.Since(start))
		if err != nil {
			return fmt.Errorf("publishing notifications after %d: %w", cursor, err)
		}

		next := batch[len(batch)-1].Seq()
		if err = j.source.SaveCursor(ctx, relayCursorName, next); err != nil {
			return fmt.Errorf("saving relay cursor %d: %w", next, err)
		}
		j.logger.DebugContext(ctx, "relayed notifications", "count", len(batch), "from", cursor, "to", next)
		cursor = next

		if len(batch) < j.batchSize {
			return nil
		}
	}
	return ctx.Err()
}
