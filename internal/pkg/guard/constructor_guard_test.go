package guard_test

import (
	"errors"
	"sync"
	"testing"

	"prepcenter/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("constructed_guard_ignores_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuard_EmbeddedInCommand shows the intended usage inside a command type.
func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("AdmitCommand must be created via NewAdmitCommand")

	type admitCommand struct {
		stationID string
		guard     guard.ConstructorGuard
	}
	newAdmitCommand := func(stationID string) admitCommand {
		return admitCommand{stationID: stationID, guard: guard.NewConstructorGuard()}
	}
	validate := func(c admitCommand) error {
		return c.guard.Validate(errNotConstructed)
	}

	t.Run("constructed", func(t *testing.T) {
		require.NoError(t, validate(newAdmitCommand("st-1")))
	})

	t.Run("struct_literal", func(t *testing.T) {
		err := validate(admitCommand{stationID: "st-1"})
		require.ErrorIs(t, err, errNotConstructed)
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("should not be returned")

	var wg sync.WaitGroup
	errCh := make(chan error, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- g.Validate(validationError)
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
}
