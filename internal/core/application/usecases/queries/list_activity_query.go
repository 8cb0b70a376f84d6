package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/activity"
	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListActivityQueryIsNotConstructed = errors.New(
		"ListActivityQuery must be created via NewListActivityQuery constructor",
	)
)

// ActivityFilter restricts the feed to one entity or one actor.
// EntityID without EntityType is rejected.
type ActivityFilter struct {
	EntityType *activity.EntityType
	EntityID   *kernel.UUID
	ActorID    *kernel.UUID
	Limit      int
}

type ListActivityQuery struct {
	filter ActivityFilter

	guard guard.ConstructorGuard
}

func NewListActivityQuery(filter ActivityFilter) (ListActivityQuery, error) {
	if filter.EntityType != nil {
		if err := filter.EntityType.Validate(); err != nil {
			return ListActivityQuery{}, err
		}
	}
	if filter.EntityID != nil {
		if filter.EntityType == nil {
			return ListActivityQuery{}, errs.NewValueIsRequiredError("entityType")
		}
		if err := filter.EntityID.Validate(); err != nil {
			return ListActivityQuery{}, errs.NewValueIsInvalidErrorWithCause("entityID", err)
		}
	}
	if filter.ActorID != nil {
		if err := filter.ActorID.Validate(); err != nil {
			return ListActivityQuery{}, errs.NewValueIsInvalidErrorWithCause("actorID", err)
		}
	}
	filter.Limit = pageSize(filter.Limit)

	return ListActivityQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActivityQuery) Filter() ActivityFilter {
	return q.filter
}

func (q ListActivityQuery) Validate() error {
	return q.guard.Validate(ErrListActivityQueryIsNotConstructed)
}
