package task_test

import (
	"testing"
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/core/domain/model/task"
	"prepcenter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func newPending(t *testing.T, spec task.Spec) *task.Task {
	t.Helper()
	if spec.Title == "" {
		spec.Title = "Label 24 bottles"
	}
	tk, err := task.NewTask(kernel.NewUUID(), spec, testNow)
	require.NoError(t, err)
	return tk
}

func ptr(id kernel.UUID) *kernel.UUID { return &id }

func TestNewTask(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		tk, err := task.NewTask(kernel.NewUUID(), task.Spec{Title: "  Inspect inbound  "}, testNow)

		require.NoError(t, err)
		require.NoError(t, tk.Validate())
		assert.Equal(t, "Inspect inbound", tk.Title())
		assert.Equal(t, task.Pending, tk.Status())
		assert.Equal(t, task.PriorityMedium, tk.Priority())
		assert.Equal(t, task.TypeCustom, tk.Type())
		assert.Nil(t, tk.AssigneeID())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("should keep a reserved assignee while pending", func(t *testing.T) {
		operator := kernel.NewUUID()

		tk := newPending(t, task.Spec{AssigneeID: ptr(operator), Priority: task.PriorityUrgent, Type: task.TypePrep})

		assert.Equal(t, task.Pending, tk.Status())
		assert.True(t, tk.AssigneeID().IsEqual(operator))
		assert.Equal(t, task.PriorityUrgent, tk.Priority())
		assert.Equal(t, task.TypePrep, tk.Type())
	})

	t.Run("should require a title", func(t *testing.T) {
		tk, err := task.NewTask(kernel.NewUUID(), task.Spec{Title: "   "}, testNow)

		assert.Nil(t, tk)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("should reject invalid enum values and ids", func(t *testing.T) {
		_, err := task.NewTask(kernel.UUID{}, task.Spec{
			Title:     "x",
			Priority:  task.Priority(9),
			StationID: &kernel.UUID{},
		}, testNow)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "priority is invalid")
		assert.Contains(t, err.Error(), "stationId")
	})
}

func TestRestoreTask(t *testing.T) {
	spec := task.Spec{Title: "x", Priority: task.PriorityLow, Type: task.TypeShip}

	t.Run("should require an assignee when in progress", func(t *testing.T) {
		_, err := task.RestoreTask(kernel.NewUUID(), spec, task.InProgress, nil, testNow, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require completedAt exactly when completed", func(t *testing.T) {
		withAssignee := spec
		withAssignee.AssigneeID = ptr(kernel.NewUUID())

		_, err := task.RestoreTask(kernel.NewUUID(), withAssignee, task.Completed, nil, testNow, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = task.RestoreTask(kernel.NewUUID(), withAssignee, task.InProgress, &testNow, testNow, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		tk, err := task.RestoreTask(kernel.NewUUID(), withAssignee, task.Completed, &testNow, testNow, testNow)
		require.NoError(t, err)
		assert.Equal(t, task.Completed, tk.Status())
	})
}

func TestTask_Validate(t *testing.T) {
	var nilTask *task.Task
	assert.Equal(t, task.ErrTaskIsNotConstructed, nilTask.Validate())
	assert.Equal(t, task.ErrTaskIsNotConstructed, (&task.Task{}).Validate())
}

func TestTask_Claim(t *testing.T) {
	t.Run("should bind the operator and start work", func(t *testing.T) {
		tk := newPending(t, task.Spec{StationID: ptr(kernel.NewUUID())})
		operator := kernel.NewUUID()
		later := testNow.Add(time.Minute)

		require.NoError(t, tk.Claim(operator, later))

		assert.Equal(t, task.InProgress, tk.Status())
		assert.True(t, tk.AssigneeID().IsEqual(operator))
		assert.True(t, tk.HoldsStationSlot())
		assert.Equal(t, later, tk.UpdatedAt())
	})

	t.Run("should reject a second claimant", func(t *testing.T) {
		tk := newPending(t, task.Spec{})
		first, second := kernel.NewUUID(), kernel.NewUUID()
		require.NoError(t, tk.Claim(first, testNow))

		err := tk.Claim(second, testNow)

		require.ErrorIs(t, err, task.ErrAlreadyClaimed)
		assert.True(t, tk.AssigneeID().IsEqual(first))
	})

	t.Run("should honour a reservation", func(t *testing.T) {
		reserved := kernel.NewUUID()
		tk := newPending(t, task.Spec{AssigneeID: ptr(reserved)})

		require.ErrorIs(t, tk.Claim(kernel.NewUUID(), testNow), task.ErrAlreadyClaimed)
		assert.Equal(t, task.Pending, tk.Status())

		require.NoError(t, tk.Claim(reserved, testNow))
		assert.Equal(t, task.InProgress, tk.Status())
	})

	t.Run("should reject claiming a cancelled task", func(t *testing.T) {
		tk := newPending(t, task.Spec{})
		_, err := tk.Cancel(testNow)
		require.NoError(t, err)

		assert.ErrorIs(t, tk.Claim(kernel.NewUUID(), testNow), task.ErrAlreadyClaimed)
	})
}

func TestTask_Complete(t *testing.T) {
	t.Run("should stamp completedAt for the holder", func(t *testing.T) {
		tk := newPending(t, task.Spec{StationID: ptr(kernel.NewUUID())})
		holder := kernel.NewUUID()
		require.NoError(t, tk.Claim(holder, testNow))
		done := testNow.Add(time.Hour)

		require.NoError(t, tk.Complete(holder, done))

		assert.Equal(t, task.Completed, tk.Status())
		require.NotNil(t, tk.CompletedAt())
		assert.Equal(t, done, *tk.CompletedAt())
		assert.False(t, tk.HoldsStationSlot())
	})

	t.Run("should reject anyone but the holder", func(t *testing.T) {
		tk := newPending(t, task.Spec{})
		require.NoError(t, tk.Claim(kernel.NewUUID(), testNow))

		err := tk.Complete(kernel.NewUUID(), testNow)

		require.ErrorIs(t, err, task.ErrNotHolder)
		assert.Equal(t, task.InProgress, tk.Status())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("should reject completing a pending task", func(t *testing.T) {
		reserved := kernel.NewUUID()
		tk := newPending(t, task.Spec{AssigneeID: ptr(reserved)})

		assert.ErrorIs(t, tk.Complete(reserved, testNow), task.ErrNotHolder)
	})
}

func TestTask_Cancel(t *testing.T) {
	t.Run("should cancel from pending and in progress", func(t *testing.T) {
		pending := newPending(t, task.Spec{})
		previous, err := pending.Cancel(testNow)
		require.NoError(t, err)
		assert.Equal(t, task.Pending, previous)
		assert.Equal(t, task.Cancelled, pending.Status())

		holder := kernel.NewUUID()
		working := newPending(t, task.Spec{StationID: ptr(kernel.NewUUID())})
		require.NoError(t, working.Claim(holder, testNow))
		previous, err = working.Cancel(testNow)
		require.NoError(t, err)
		assert.Equal(t, task.InProgress, previous)
		assert.True(t, working.AssigneeID().IsEqual(holder))
		assert.False(t, working.HoldsStationSlot())
	})

	t.Run("should reject cancelling terminal tasks", func(t *testing.T) {
		holder := kernel.NewUUID()
		tk := newPending(t, task.Spec{})
		require.NoError(t, tk.Claim(holder, testNow))
		require.NoError(t, tk.Complete(holder, testNow))

		_, err := tk.Cancel(testNow)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, task.Completed, tk.Status())

		cancelled := newPending(t, task.Spec{})
		_, _ = cancelled.Cancel(testNow)
		_, err = cancelled.Cancel(testNow)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
