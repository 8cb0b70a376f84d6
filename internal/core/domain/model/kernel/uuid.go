package kernel

import (
	"fmt"

	"prepcenter/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies shipments, tasks, stations and the actors (clients, operators, admins)
// that act on them. It wraps github.com/google/uuid so that the zero value is
// detectably invalid.
//
// Example:
//
//	taskID := kernel.NewUUID()
//	operatorID, err := kernel.UUIDFromString(claims.Subject)
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any textual form accepted by uuid.Parse.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes builds a UUID from its 16-byte form, as stored by the repositories.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromPtr converts an optional database column back to an optional identifier.
func UUIDFromPtr(id *uuid.UUID) (*UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := fromGoogle(*id)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// String returns the canonical hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID (a [16]byte array).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// PtrBytes converts an optional identifier to its optional column form.
func PtrBytes(id *UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// PtrEqual compares two optional identifiers; two nils are equal.
func PtrEqual(a, b *UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}
