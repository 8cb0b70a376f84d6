package services

import (
	"time"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
)

// TransitionKind identifies what happened to an entity.
type TransitionKind string

const (
	ShipmentCreated   TransitionKind = "SHIPMENT_CREATED"
	ShipmentAdvanced  TransitionKind = "SHIPMENT_ADVANCED"
	ShipmentStatusSet TransitionKind = "SHIPMENT_STATUS_SET"
	TaskCreated       TransitionKind = "TASK_CREATED"
	TaskClaimed       TransitionKind = "TASK_CLAIMED"
	TaskCompleted     TransitionKind = "TASK_COMPLETED"
	TaskCancelled     TransitionKind = "TASK_CANCELLED"
	StationCreated    TransitionKind = "STATION_CREATED"
	StationUpdated    TransitionKind = "STATION_UPDATED"
)

// Transition describes one committed state change.
type Transition struct {
	Kind       TransitionKind
	EntityType activity.EntityType
	EntityID   kernel.UUID
	// Label is the human-facing handle of the entity: tracking code, task title or station name.
	Label   string
	ActorID kernel.UUID
	// Recipient is the user to notify, when the transition has one: the shipment owner,
	// a pre-assigned operator, or the previous assignee of a cancelled task.
	Recipient *kernel.UUID
	From      string
	To        string
	At        time.Time
}
