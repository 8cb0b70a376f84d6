package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sourceMock struct {
	mock.Mock
}

func (m *sourceMock) ListAfter(ctx context.Context, seq int64, limit int) ([]activity.Notification, error) {
	args := m.Called(ctx, seq, limit)
	return args.Get(0).([]activity.Notification), args.Error(1)
}

func (m *sourceMock) LoadCursor(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *sourceMock) SaveCursor(ctx context.Context, name string, seq int64) error {
	return m.Called(ctx, name, seq).Error(0)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, notifications []activity.Notification) error {
	return m.Called(ctx, notifications).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notifications(t *testing.T, seqs ...int64) []activity.Notification {
	t.Helper()
	out := make([]activity.Notification, 0, len(seqs))
	for _, seq := range seqs {
		n, err := activity.RestoreNotification(kernel.NewUUID(), seq, kernel.NewUUID(), "Task assigned", "",
			activity.NotificationTaskAssigned, activity.EntityTask, nil, time.Now().UTC())
		require.NoError(t, err)
		out = append(out, n)
	}
	return out
}

func TestNotificationRelayJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes batches and advances the cursor", func(t *testing.T) {
		source := &sourceMock{}
		publisher := &publisherMock{}
		m := metrics.New(metrics.DefaultConfig())

		first := notifications(t, 11, 12)
		second := notifications(t, 13)

		source.On("LoadCursor", ctx, relayCursorName).Return(int64(10), nil)
		source.On("ListAfter", ctx, int64(10), 2).Return(first, nil)
		source.On("ListAfter", ctx, int64(12), 2).Return(second, nil)
		publisher.On("Publish", ctx, first).Return(nil)
		publisher.On("Publish", ctx, second).Return(nil)
		source.On("SaveCursor", ctx, relayCursorName, int64(12)).Return(nil)
		source.On("SaveCursor", ctx, relayCursorName, int64(13)).Return(nil)

		job := NewNotificationRelayJob(source, publisher, 2, m, discardLogger())
		require.NoError(t, job.Run(ctx))

		source.AssertExpectations(t)
		publisher.AssertExpectations(t)
		assert.InDelta(t, 3, testutil.ToFloat64(m.NotificationsRelayed.WithLabelValues("success")), 0)
	})

	t.Run("nothing new", func(t *testing.T) {
		source := &sourceMock{}
		publisher := &publisherMock{}

		source.On("LoadCursor", ctx, relayCursorName).Return(int64(4), nil)
		source.On("ListAfter", ctx, int64(4), defaultRelayBatch).Return([]activity.Notification{}, nil)

		job := NewNotificationRelayJob(source, publisher, 0, metrics.New(metrics.DefaultConfig()), discardLogger())
		require.NoError(t, job.Run(ctx))

		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		source.AssertNotCalled(t, "SaveCursor", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure keeps the cursor", func(t *testing.T) {
		source := &sourceMock{}
		publisher := &publisherMock{}
		m := metrics.New(metrics.DefaultConfig())

		batch := notifications(t, 5, 6)
		source.On("LoadCursor", ctx, relayCursorName).Return(int64(4), nil)
		source.On("ListAfter", ctx, int64(4), 10).Return(batch, nil)
		publisher.On("Publish", ctx, batch).Return(errors.New("broker down"))

		job := NewNotificationRelayJob(source, publisher, 10, m, discardLogger())
		err := job.Run(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")
		source.AssertNotCalled(t, "SaveCursor", mock.Anything, mock.Anything, mock.Anything)
		assert.InDelta(t, 2, testutil.ToFloat64(m.NotificationsRelayed.WithLabelValues("failure")), 0)
	})
}
