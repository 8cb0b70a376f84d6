package ports

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
)

// NotificationPublisher hands inbox notifications to downstream channels (email, push).
// A batch is either accepted as a whole or the call fails and it is retried later.
type NotificationPublisher interface {
	Publish(ctx context.Context, notifications []activity.Notification) error
}

// NotificationSource reads the inbox in sequence order and remembers how far each relay got.
type NotificationSource interface {
	ListAfter(ctx context.Context, seq int64, limit int) ([]activity.Notification, error)
	LoadCursor(ctx context.Context, name string) (int64, error)
	SaveCursor(ctx context.Context, name string, seq int64) error
}
