// Package events runs the side effects of committed state transitions.
package events

import (
	"context"
	"log/slog"

	"prepcenter/internal/core/domain/services"
	"prepcenter/internal/core/ports"
	"prepcenter/internal/pkg/metrics"
)

// Dispatcher turns a committed transition into its notification and activity entry.
//
// Dispatch must only be called after the store has confirmed the transition. Failures to
// record either side effect are logged and counted but never returned: the transition has
// already happened and the caller must see it as successful.
type Dispatcher struct {
	catalog  services.TransitionCatalog
	notifier ports.Notifier
	activity ports.ActivityLogger
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewDispatcher(
	notifier ports.Notifier,
	activity ports.ActivityLogger,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		catalog:  services.NewTransitionCatalog(),
		notifier: notifier,
		activity: activity,
		metrics:  m,
		logger:   logger.With("component", "event-dispatcher"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, t services.Transition) {
	d.metrics.RecordTransition(string(t.Kind))

	effects, err := d.catalog.Render(t)
	if err != nil {
		d.metrics.RecordSideEffectFailure("render")
		d.logger.ErrorContext(ctx, "failed to render transition",
			"kind", t.Kind, "entityId", t.EntityID.String(), "error", err)
		return
	}

	if effects.Notification != nil {
		if err := d.notifier.Notify(ctx, *effects.Notification); err != nil {
			d.metrics.RecordSideEffectFailure("notification")
			d.logger.ErrorContext(ctx, "failed to deliver notification",
				"kind", t.Kind, "entityId", t.EntityID.String(),
				"userId", effects.Notification.UserID().String(), "error", err)
		}
	}

	if err := d.activity.Append(ctx, effects.Entry); err != nil {
		d.metrics.RecordSideEffectFailure("activity")
		d.logger.ErrorContext(ctx, "failed to append activity entry",
			"kind", t.Kind, "entityId", t.EntityID.String(), "error", err)
	}
}
