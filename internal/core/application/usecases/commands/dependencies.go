// Package commands contains the business operations that modify system state.
// Every handler follows the same shape: validate the command, open a unit of work, apply
// the domain transition, persist it with a conditional update, commit, and only then hand
// the transition to the event dispatcher.
package commands

import (
	"context"
	"errors"

	"prepcenter/internal/core/domain/services"
)

// ErrConcurrentUpdate is the cause attached to InvalidState errors when a conditional
// update found the row already changed by another writer.
var ErrConcurrentUpdate = errors.New("entity was modified concurrently")

// EventDispatcher emits the side effects of a committed transition.
type EventDispatcher interface {
	Dispatch(ctx context.Context, transition services.Transition)
}
