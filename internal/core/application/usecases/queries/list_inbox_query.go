package queries

import (
	"errors"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
	"prepcenter/internal/pkg/guard"
)

var (
	ErrListInboxQueryIsNotConstructed = errors.New("ListInboxQuery must be created via NewListInboxQuery constructor")
)

// ListInboxQuery reads a user's notifications with a sequence number greater than AfterSeq,
// oldest first. A stream consumer resumes by passing the last sequence it has seen.
//
// Example:
//
//	query, _ := NewListInboxQuery(userID, lastSeenSeq, 100)
//	notifications, err := handler.Handle(ctx, query)
type ListInboxQuery struct {
	userID   kernel.UUID
	afterSeq int64
	limit    int

	guard guard.ConstructorGuard
}

func NewListInboxQuery(userID kernel.UUID, afterSeq int64, limit int) (ListInboxQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListInboxQuery{}, errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	if afterSeq < 0 {
		return ListInboxQuery{}, errs.NewValueIsOutOfRangeError("afterSeq", afterSeq, 0, nil)
	}

	return ListInboxQuery{
		userID:   userID,
		afterSeq: afterSeq,
		limit:    pageSize(limit),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListInboxQuery) UserID() kernel.UUID { return q.userID }
func (q ListInboxQuery) AfterSeq() int64     { return q.afterSeq }
func (q ListInboxQuery) Limit() int          { return q.limit }

func (q ListInboxQuery) Validate() error {
	return q.guard.Validate(ErrListInboxQueryIsNotConstructed)
}
