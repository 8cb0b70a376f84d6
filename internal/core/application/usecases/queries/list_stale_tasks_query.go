package queries

import (
	"errors"
	"time"

	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListStaleTasksQueryIsNotConstructed = errors.New(
		"ListStaleTasksQuery must be created via NewListStaleTasksQuery constructor",
	)
)

// ListStaleTasksQuery finds IN_PROGRESS tasks not touched since the cutoff.
type ListStaleTasksQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewListStaleTasksQuery(cutoff time.Time) (ListStaleTasksQuery, error) {
	if cutoff.IsZero() {
		return ListStaleTasksQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ListStaleTasksQuery{cutoff: cutoff.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListStaleTasksQuery) Cutoff() time.Time {
	return q.cutoff
}

func (q ListStaleTasksQuery) Validate() error {
	return q.guard.Validate(ErrListStaleTasksQueryIsNotConstructed)
}
