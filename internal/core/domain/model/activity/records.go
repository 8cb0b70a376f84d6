package activity

import (
	"errors"
	"strings"
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
)

// Notification is a message delivered to one user's inbox. Seq is assigned by the store
// and orders notifications for relaying and for live feeds; it is zero until persisted.
type Notification struct {
	id         kernel.UUID
	seq        int64
	userID     kernel.UUID
	title      string
	message    string
	kind       NotificationType
	entityType EntityType
	entityID   *kernel.UUID
	createdAt  time.Time
}

func NewNotification(
	userID kernel.UUID,
	title, message string,
	kind NotificationType,
	entityType EntityType,
	entityID *kernel.UUID,
	now time.Time,
) (Notification, error) {
	return RestoreNotification(kernel.NewUUID(), 0, userID, title, message, kind, entityType, entityID, now)
}

func RestoreNotification(
	id kernel.UUID,
	seq int64,
	userID kernel.UUID,
	title, message string,
	kind NotificationType,
	entityType EntityType,
	entityID *kernel.UUID,
	createdAt time.Time,
) (Notification, error) {
	var titleErr error
	if strings.TrimSpace(title) == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if err := errors.Join(id.Validate(), userID.Validate(), titleErr, kind.Validate(), entityType.Validate()); err != nil {
		return Notification{}, err
	}
	return Notification{
		id:         id,
		seq:        seq,
		userID:     userID,
		title:      title,
		message:    message,
		kind:       kind,
		entityType: entityType,
		entityID:   entityID,
		createdAt:  createdAt,
	}, nil
}

func (n Notification) ID() kernel.UUID { return n.id }
func (n Notification) Seq() int64 { return n.seq }
func (n Notification) UserID() kernel.UUID { return n.userID }
func (n Notification) Title() string { return n.title }
func (n Notification) Message() string { return n.message }
func (n Notification) Type() NotificationType { return n.kind }
func (n Notification) EntityType() EntityType { return n.entityType }
func (n Notification) EntityID() *kernel.UUID { return n.entityID }
func (n Notification) CreatedAt() time.Time { return n.createdAt }

// Entry is one audit line: who did what to which entity.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	action     string
	entityType EntityType
	entityID   *kernel.UUID
	createdAt  time.Time
}

func NewEntry(actorID kernel.UUID, action string, entityType EntityType, entityID *kernel.UUID, now time.Time) (Entry, error) {
	return RestoreEntry(kernel.NewUUID(), actorID, action, entityType, entityID, now)
}

func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	action string,
	entityType EntityType,
	entityID *kernel.UUID,
	createdAt time.Time,
) (Entry, error) {
	var actionErr error
	if strings.TrimSpace(action) == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}
	if err := errors.Join(id.Validate(), actorID.Validate(), actionErr, entityType.Validate()); err != nil {
		return Entry{}, err
	}
	return Entry{
		id:         id,
		actorID:    actorID,
		action:     action,
		entityType: entityType,
		entityID:   entityID,
		createdAt:  createdAt,
	}, nil
}

func (e Entry) ID() kernel.UUID { return e.id }
func (e Entry) ActorID() kernel.UUID { return e.actorID }
func (e Entry) Action() string { return e.action }
func (e Entry) EntityType() EntityType { return e.entityType }
func (e Entry) EntityID() *kernel.UUID { return e.entityID }
func (e Entry) CreatedAt() time.Time { return e.createdAt }
