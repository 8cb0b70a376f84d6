package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
)

var (
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

	// ErrAlreadyClaimed means another operator took the task first, or it left PENDING.
	// Callers should refresh rather than retry.
	ErrAlreadyClaimed = errors.New("task already claimed")

	// ErrNotHolder means the caller is not the operator currently holding the task.
	ErrNotHolder = errors.New("caller is not the task holder")
)

// Task is a unit of warehouse work, optionally linked to a shipment and bound to a station.
//
// Invariants:
//   - IN_PROGRESS and COMPLETED tasks always have an assignee
//   - completedAt is set if and only if the status is COMPLETED
//   - a PENDING task with an assignee is reserved: only that operator may claim it
type Task struct {
	id          kernel.UUID
	title       string
	description string
	status      Status
	priority    Priority
	kind        Type
	assigneeID  *kernel.UUID
	shipmentID  *kernel.UUID
	stationID   *kernel.UUID
	dueDate     *time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// Spec carries the caller-supplied attributes of a new task. Zero priority and type
// fall back to MEDIUM and CUSTOM.
type Spec struct {
	Title       string
	Description string
	Priority    Priority
	Type        Type
	AssigneeID  *kernel.UUID
	ShipmentID  *kernel.UUID
	StationID   *kernel.UUID
	DueDate     *time.Time
}

// NewTask creates a PENDING task. Station and shipment existence are checked by the caller.
func NewTask(id kernel.UUID, spec Spec, now time.Time) (*Task, error) {
	if spec.Priority == PriorityUnknown {
		spec.Priority = PriorityMedium
	}
	if spec.Type == TypeUnknown {
		spec.Type = TypeCustom
	}

	title := strings.TrimSpace(spec.Title)
	var titleErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}

	if err := errors.Join(
		id.Validate(),
		titleErr,
		spec.Priority.Validate(),
		spec.Type.Validate(),
		validateOptional("assigneeId", spec.AssigneeID),
		validateOptional("shipmentId", spec.ShipmentID),
		validateOptional("stationId", spec.StationID),
	); err != nil {
		return nil, err
	}

	return &Task{
		id:            id,
		title:         title,
		description:   spec.Description,
		status:        Pending,
		priority:      spec.Priority,
		kind:          spec.Type,
		assigneeID:    spec.AssigneeID,
		shipmentID:    spec.ShipmentID,
		stationID:     spec.StationID,
		dueDate:       spec.DueDate,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreTask rebuilds a task from persistence, checking the status invariants.
func RestoreTask(
	id kernel.UUID,
	spec Spec,
	status Status,
	completedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Task, error) {
	if err := errors.Join(id.Validate(), status.Validate(), spec.Priority.Validate(), spec.Type.Validate()); err != nil {
		return nil, err
	}
	if (status == InProgress || status == Completed) && spec.AssigneeID == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("assigneeId", fmt.Errorf("task %s is %s", id, status))
	}
	if (status == Completed) != (completedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedAt", fmt.Errorf("task %s is %s", id, status))
	}

	return &Task{
		id:            id,
		title:         spec.Title,
		description:   spec.Description,
		status:        status,
		priority:      spec.Priority,
		kind:          spec.Type,
		assigneeID:    spec.AssigneeID,
		shipmentID:    spec.ShipmentID,
		stationID:     spec.StationID,
		dueDate:       spec.DueDate,
		completedAt:   completedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *Task) ID() kernel.UUID { return t.id }
func (t *Task) Title() string { return t.title }
func (t *Task) Description() string { return t.description }
func (t *Task) Status() Status { return t.status }
func (t *Task) Priority() Priority { return t.priority }
func (t *Task) Type() Type { return t.kind }
func (t *Task) AssigneeID() *kernel.UUID { return t.assigneeID }
func (t *Task) ShipmentID() *kernel.UUID { return t.shipmentID }
func (t *Task) StationID() *kernel.UUID { return t.stationID }
func (t *Task) DueDate() *time.Time { return t.dueDate }
func (t *Task) CompletedAt() *time.Time { return t.completedAt }
func (t *Task) CreatedAt() time.Time { return t.createdAt }
func (t *Task) UpdatedAt() time.Time { return t.updatedAt }

// HoldsStationSlot reports whether the task currently occupies a unit of station capacity.
func (t *Task) HoldsStationSlot() bool {
	return t.status == InProgress && t.stationID != nil
}

// IsClaimableBy reports whether operatorID may claim the task right now.
func (t *Task) IsClaimableBy(operatorID kernel.UUID) bool {
	if t.status != Pending {
		return false
	}
	return t.assigneeID == nil || t.assigneeID.IsEqual(operatorID)
}

// Claim binds the task to operatorID and moves it to IN_PROGRESS.
// Returns ErrAlreadyClaimed when the task is not PENDING or is reserved for another operator.
func (t *Task) Claim(operatorID kernel.UUID, now time.Time) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	if !t.IsClaimableBy(operatorID) {
		return ErrAlreadyClaimed
	}

	holder := operatorID
	t.assigneeID = &holder
	t.status = InProgress
	t.updatedAt = now
	return nil
}

// Complete finishes the task. Only the holder of an IN_PROGRESS task may complete it.
func (t *Task) Complete(operatorID kernel.UUID, now time.Time) error {
	if t.status != InProgress || t.assigneeID == nil || !t.assigneeID.IsEqual(operatorID) {
		return ErrNotHolder
	}

	completedAt := now
	t.status = Completed
	t.completedAt = &completedAt
	t.updatedAt = now
	return nil
}

// Cancel moves a PENDING or IN_PROGRESS task to CANCELLED and returns the status it
// had before, which callers use both as the update guard and to decide whether a
// station slot must be released. The assignee is kept so it can be notified.
func (t *Task) Cancel(now time.Time) (Status, error) {
	previous := t.status
	if previous.IsTerminal() {
		return previous, errs.NewInvalidStateError("task", t.id.String(), previous.String(), "cancel")
	}

	t.status = Cancelled
	t.updatedAt = now
	return previous, nil
}

func validateOptional(param string, id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}
