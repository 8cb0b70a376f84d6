package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/resilience"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	batches [][]kafka.Message
	err     error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.batches = append(w.batches, msgs)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func notification(t *testing.T, user kernel.UUID, seq int64) activity.Notification {
	shipmentID := kernel.NewUUID()
	n, err := activity.RestoreNotification(kernel.NewUUID(), seq, user, "Shipment status updated",
		"Shipment 1Z999 is now RECEIVED", activity.NotificationShipmentStatus, activity.EntityShipment,
		&shipmentID, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return n
}

func TestPublish_EncodesBatchKeyedByRecipient(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newNotificationPublisher(writer, nil)
	user := kernel.NewUUID()

	err := publisher.Publish(context.Background(), []activity.Notification{notification(t, user, 41), notification(t, user, 42)})

	require.NoError(t, err)
	require.Len(t, writer.batches, 1)
	batch := writer.batches[0]
	require.Len(t, batch, 2)
	assert.Equal(t, user.String(), string(batch[0].Key))

	var body notificationMessage
	require.NoError(t, json.Unmarshal(batch[1].Value, &body))
	assert.Equal(t, int64(42), body.Seq)
	assert.Equal(t, "SHIPMENT_STATUS", body.Type)
	assert.Equal(t, "Shipment 1Z999 is now RECEIVED", body.Message)
	assert.NotNil(t, body.EntityID)
}

func TestPublish_EmptyBatchIsNoop(t *testing.T) {
	writer := &recordingWriter{}
	publisher := newNotificationPublisher(writer, nil)

	require.NoError(t, publisher.Publish(context.Background(), nil))
	assert.Empty(t, writer.batches)
}

func TestPublish_OpenBreakerReportsUnavailable(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}
	cfg := resilience.DefaultCircuitBreakerConfig("kafka")
	cfg.FailureThreshold = 1
	breaker := resilience.NewCircuitBreaker(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	publisher := newNotificationPublisher(writer, breaker)
	batch := []activity.Notification{notification(t, kernel.NewUUID(), 1)}

	first := publisher.Publish(context.Background(), batch)
	second := publisher.Publish(context.Background(), batch)

	assert.ErrorIs(t, first, writer.err)
	assert.ErrorIs(t, second, errs.ErrStoreUnavailable)
	assert.ErrorIs(t, second, resilience.ErrCircuitOpen)
}
