package activity

import (
	"fmt"

	"prepcenter/internal/pkg/errs"
)

// EntityType names the kind of record an entry or notification refers to.
type EntityType string

const (
	EntityShipment EntityType = "SHIPMENT"
	EntityTask     EntityType = "TASK"
	EntityStation  EntityType = "STATION"
)

func (e EntityType) Validate() error {
	switch e {
	case EntityShipment, EntityTask, EntityStation:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("entityType", fmt.Errorf("%q is not an entity type", string(e)))
}

// NotificationType groups inbox messages for filtering in clients.
type NotificationType string

const (
	NotificationShipmentStatus NotificationType = "SHIPMENT_STATUS"
	NotificationTaskAssigned   NotificationType = "TASK_ASSIGNED"
	NotificationTaskCancelled  NotificationType = "TASK_CANCELLED"
)

func (n NotificationType) Validate() error {
	switch n {
	case NotificationShipmentStatus, NotificationTaskAssigned, NotificationTaskCancelled:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("notificationType", fmt.Errorf("%q is not a notification type", string(n)))
}
