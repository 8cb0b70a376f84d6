package ports

import (
	"context"

	"prepcenter/internal/core/domain/model/activity"
)

// Notifier delivers a notification to its user's inbox. Delivery is fire-and-forget and
// at-least-once; the core never waits for an acknowledgement beyond the returned error.
type Notifier interface {
	Notify(ctx context.Context, notification activity.Notification) error
}

// ActivityLogger appends an immutable audit entry.
type ActivityLogger interface {
	Append(ctx context.Context, entry activity.Entry) error
}
