package errs_test

import (
	"errors"
	"testing"

	"prepcenter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("taskId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("shipment", "sh-1", "DELIVERED", "advance")

		assert.Equal(t, "shipment", err.Entity)
		assert.Equal(t, "DELIVERED", err.State)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: cannot advance shipment sh-1 in state DELIVERED", err.Error())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("status changed concurrently")
		err := errs.NewInvalidStateErrorWithCause("task", "t-1", "COMPLETED", "cancel", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: cannot cancel task t-1 in state COMPLETED (cause: status changed concurrently)",
			err.Error())
	})
}

func TestStoreUnavailableError(t *testing.T) {
	t.Run("NewStoreUnavailableError", func(t *testing.T) {
		err := errs.NewStoreUnavailableError("begin transaction")

		assert.Equal(t, "begin transaction", err.Operation)
		assert.Equal(t, "store unavailable: begin transaction", err.Error())
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("NewStoreUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewStoreUnavailableErrorWithCause("claim task", cause)

		assert.Equal(t, "store unavailable: claim task (cause: connection refused)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrStoreUnavailable)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "store unavailable", errs.ErrStoreUnavailable.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("userId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("email")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("username")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		invalidStateErr := errs.NewInvalidStateError("task", "1", "CANCELLED", "claim")
		require.ErrorIs(t, invalidStateErr, errs.ErrInvalidState)

		storeErr := errs.NewStoreUnavailableError("get task")
		require.ErrorIs(t, storeErr, errs.ErrStoreUnavailable)
	})

	t.Run("causes stay reachable behind the sentinel", func(t *testing.T) {
		cause := errors.New("status changed concurrently")
		err := errs.NewInvalidStateErrorWithCause("shipment", "sh-1", "RECEIVED", "advance", cause)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
