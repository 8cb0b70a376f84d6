package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"prepcenter/internal/core/application/events"
	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, n activity.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type mockActivityLogger struct{ mock.Mock }

func (m *mockActivityLogger) Append(ctx context.Context, e activity.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func advanced(owner kernel.UUID) services.Transition {
	return services.Transition{
		Kind:       services.ShipmentAdvanced,
		EntityType: activity.EntityShipment,
		EntityID:   kernel.NewUUID(),
		Label:      "TRK-1",
		ActorID:    kernel.NewUUID(),
		Recipient:  &owner,
		From:       "DRAFT",
		To:         "RECEIVED",
		At:         time.Now(),
	}
}

func newDispatcher(n *mockNotifier, a *mockActivityLogger) (*events.Dispatcher, *metrics.Metrics) {
	m := metrics.New(metrics.DefaultConfig())
	return events.NewDispatcher(n, a, m, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("should emit one notification and one entry", func(t *testing.T) {
		owner := kernel.NewUUID()
		notifier := &mockNotifier{}
		logger := &mockActivityLogger{}
		notifier.On("Notify", ctx, mock.MatchedBy(func(n activity.Notification) bool {
			return n.UserID().IsEqual(owner) && n.Type() == activity.NotificationShipmentStatus
		})).Return(nil).Once()
		logger.On("Append", ctx, mock.MatchedBy(func(e activity.Entry) bool {
			return e.Action() == "advanced shipment TRK-1 to RECEIVED"
		})).Return(nil).Once()
		dispatcher, m := newDispatcher(notifier, logger)

		dispatcher.Dispatch(ctx, advanced(owner))

		notifier.AssertExpectations(t)
		logger.AssertExpectations(t)
		assert.InDelta(t, 1, testutil.ToFloat64(m.TransitionsTotal.WithLabelValues("SHIPMENT_ADVANCED")), 0)
	})

	t.Run("should not notify when there is no recipient", func(t *testing.T) {
		notifier := &mockNotifier{}
		logger := &mockActivityLogger{}
		logger.On("Append", ctx, mock.Anything).Return(nil).Once()
		dispatcher, _ := newDispatcher(notifier, logger)

		dispatcher.Dispatch(ctx, services.Transition{
			Kind: services.TaskClaimed, EntityType: activity.EntityTask,
			EntityID: kernel.NewUUID(), ActorID: kernel.NewUUID(), Label: "x", At: time.Now(),
		})

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		logger.AssertExpectations(t)
	})

	t.Run("should log and count side effect failures without stopping", func(t *testing.T) {
		notifier := &mockNotifier{}
		logger := &mockActivityLogger{}
		notifier.On("Notify", ctx, mock.Anything).Return(errors.New("inbox down")).Once()
		logger.On("Append", ctx, mock.Anything).Return(errors.New("audit down")).Once()
		dispatcher, m := newDispatcher(notifier, logger)

		dispatcher.Dispatch(ctx, advanced(kernel.NewUUID()))

		logger.AssertExpectations(t)
		assert.InDelta(t, 1, testutil.ToFloat64(m.SideEffectFailures.WithLabelValues("notification")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(m.SideEffectFailures.WithLabelValues("activity")), 0)
	})
}
