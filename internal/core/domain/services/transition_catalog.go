package services

import (
	"fmt"

	"prepcenter/internal/core/domain/model/activity"
)

// Effects are the side-effect records a transition produces: at most one notification
// and exactly one activity entry.
type Effects struct {
	Notification *activity.Notification
	Entry        activity.Entry
}

type template struct {
	entityType activity.EntityType
	action     func(Transition) string
	notify     *notificationTemplate
}

type notificationTemplate struct {
	kind    activity.NotificationType
	title   string
	message func(Transition) string
}

// TransitionCatalog maps (entity type, transition kind) to notification and audit text.
//
// Example:
//
//	effects, err := services.NewTransitionCatalog().Render(services.Transition{
//	    Kind:       services.ShipmentAdvanced,
//	    EntityType: activity.EntityShipment,
//	    EntityID:   sh.ID(),
//	    Label:      sh.TrackingCode(),
//	    ActorID:    operatorID,
//	    Recipient:  &clientID,
//	    From:       "DRAFT",
//	    To:         "RECEIVED",
//	    At:         now,
//	})
type TransitionCatalog struct {
	templates map[TransitionKind]template
}

func NewTransitionCatalog() TransitionCatalog {
	shipmentStatus := &notificationTemplate{
		kind:  activity.NotificationShipmentStatus,
		title: "Shipment status updated",
		message: func(t Transition) string {
			return fmt.Sprintf("Shipment %s is now %s", t.Label, t.To)
		},
	}

	return TransitionCatalog{templates: map[TransitionKind]template{
		ShipmentCreated: {
			entityType: activity.EntityShipment,
			action:     func(t Transition) string { return "created shipment " + t.Label },
		},
		ShipmentAdvanced: {
			entityType: activity.EntityShipment,
			action:     func(t Transition) string { return fmt.Sprintf("advanced shipment %s to %s", t.Label, t.To) },
			notify:     shipmentStatus,
		},
		ShipmentStatusSet: {
			entityType: activity.EntityShipment,
			action:     func(t Transition) string { return fmt.Sprintf("set shipment %s status to %s", t.Label, t.To) },
			notify:     shipmentStatus,
		},
		TaskCreated: {
			entityType: activity.EntityTask,
			action:     func(t Transition) string { return "created task " + t.Label },
			notify: &notificationTemplate{
				kind:    activity.NotificationTaskAssigned,
				title:   "New task assigned",
				message: func(t Transition) string { return "You have been assigned: " + t.Label },
			},
		},
		TaskClaimed: {
			entityType: activity.EntityTask,
			action:     func(t Transition) string { return "claimed task " + t.Label },
		},
		TaskCompleted: {
			entityType: activity.EntityTask,
			action:     func(t Transition) string { return "completed task " + t.Label },
		},
		TaskCancelled: {
			entityType: activity.EntityTask,
			action:     func(t Transition) string { return "cancelled task " + t.Label },
			notify: &notificationTemplate{
				kind:    activity.NotificationTaskCancelled,
				title:   "Task cancelled",
				message: func(t Transition) string { return fmt.Sprintf("Task %s was cancelled", t.Label) },
			},
		},
		StationCreated: {
			entityType: activity.EntityStation,
			action:     func(t Transition) string { return "created station " + t.Label },
		},
		StationUpdated: {
			entityType: activity.EntityStation,
			action:     func(t Transition) string { return "updated station " + t.Label },
		},
	}}
}

// Render produces the effects of t. A notification is only produced when the transition
// kind has a template and t names a recipient.
func (c TransitionCatalog) Render(t Transition) (Effects, error) {
	tpl, ok := c.templates[t.Kind]
	if !ok || tpl.entityType != t.EntityType {
		return Effects{}, fmt.Errorf("no template for %s transition %s", t.EntityType, t.Kind)
	}

	entityID := t.EntityID
	entry, err := activity.NewEntry(t.ActorID, tpl.action(t), t.EntityType, &entityID, t.At)
	if err != nil {
		return Effects{}, err
	}

	effects := Effects{Entry: entry}
	if tpl.notify == nil || t.Recipient == nil {
		return effects, nil
	}

	n, err := activity.NewNotification(*t.Recipient, tpl.notify.title, tpl.notify.message(t),
		tpl.notify.kind, t.EntityType, &entityID, t.At)
	if err != nil {
		return Effects{}, err
	}
	effects.Notification = &n
	return effects, nil
}
