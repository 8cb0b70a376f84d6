package kernel_test

import (
	"testing"

	"prepcenter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid non-nil UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	const valid = "550e8400-e29b-41d4-a716-446655440000"

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", valid, false},
		{"braces", "{" + valid + "}", false},
		{"urn prefix", "urn:uuid:" + valid, false},
		{"empty", "", true},
		{"garbage", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid, id.String())
		})
	}

	t.Run("nil uuid reports not constructed", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trips through Bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})
}

func TestUUIDFromPtr(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		id, err := kernel.UUIDFromPtr(nil)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("value is converted", func(t *testing.T) {
		raw := uuid.New()
		id, err := kernel.UUIDFromPtr(&raw)
		require.NoError(t, err)
		require.NotNil(t, id)
		assert.Equal(t, raw, id.Bytes())
	})
}

func TestPtrHelpers(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()
	aCopy := a

	assert.True(t, kernel.PtrEqual(nil, nil))
	assert.False(t, kernel.PtrEqual(&a, nil))
	assert.False(t, kernel.PtrEqual(nil, &a))
	assert.True(t, kernel.PtrEqual(&a, &aCopy))
	assert.False(t, kernel.PtrEqual(&a, &b))

	assert.Nil(t, kernel.PtrBytes(nil))
	require.NotNil(t, kernel.PtrBytes(&a))
	assert.Equal(t, a.Bytes(), *kernel.PtrBytes(&a))
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}
