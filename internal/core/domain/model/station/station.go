package station

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"prepcenter/internal/core/domain/model/kernel"
	"prepcenter/internal/pkg/errs"
)

var (
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

	// ErrStationAtCapacity is returned by Admit when every slot is in use.
	ErrStationAtCapacity = errors.New("station at capacity")

	// ErrStationInactive is returned by Admit, and by task creation, for an INACTIVE station.
	ErrStationInactive = errors.New("station inactive")
)

// Station is a physical work cell acting as a counting semaphore for in-flight tasks.
//
// Invariants:
//   - Capacity > 0
//   - 0 <= CurrentLoad <= Capacity
//   - INACTIVE stations admit nothing
type Station struct {
	id          kernel.UUID
	name        string
	kind        Type
	status      Status
	capacity    int
	currentLoad int
	operatorID  *kernel.UUID
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewStation creates an ACTIVE station with no load.
func NewStation(id kernel.UUID, name string, kind Type, capacity int, operatorID *kernel.UUID, now time.Time) (*Station, error) {
	s := &Station{
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		s.setName(name),
		s.setType(kind),
		s.setCapacity(capacity),
		s.setOperator(operatorID),
	); err != nil {
		return nil, err
	}
	s.id = id

	return s, nil
}

// RestoreStation rebuilds a station from persistence.
func RestoreStation(
	id kernel.UUID,
	name string,
	kind Type,
	status Status,
	capacity int,
	currentLoad int,
	operatorID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Station, error) {
	s := &Station{
		id:            id,
		status:        status,
		currentLoad:   currentLoad,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		s.setName(name),
		s.setType(kind),
		s.setCapacity(capacity),
		s.setOperator(operatorID),
	); err != nil {
		return nil, err
	}
	if currentLoad < 0 || currentLoad > capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, capacity)
	}

	return s, nil
}

func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

func (s *Station) ID() kernel.UUID { return s.id }
func (s *Station) Name() string { return s.name }
func (s *Station) Type() Type { return s.kind }
func (s *Station) Status() Status { return s.status }
func (s *Station) Capacity() int { return s.capacity }
func (s *Station) CurrentLoad() int { return s.currentLoad }
func (s *Station) OperatorID() *kernel.UUID { return s.operatorID }
func (s *Station) CreatedAt() time.Time { return s.createdAt }
func (s *Station) UpdatedAt() time.Time { return s.updatedAt }

// IsActive reports whether the station accepts new task bindings.
func (s *Station) IsActive() bool {
	return s.status == Active
}

// CheckAdmission classifies why an admission would fail, or returns nil if it would succeed.
// Store adapters call it on a freshly read row after their conditional increment matched nothing.
func (s *Station) CheckAdmission() error {
	if !s.IsActive() {
		return ErrStationInactive
	}
	if s.currentLoad >= s.capacity {
		return ErrStationAtCapacity
	}
	return nil
}

// Admit takes one slot. On failure the station is unchanged.
func (s *Station) Admit() error {
	if err := s.CheckAdmission(); err != nil {
		return err
	}
	s.currentLoad++
	return nil
}

// Release frees one slot, floored at zero so a repeated release is harmless.
func (s *Station) Release() {
	if s.currentLoad > 0 {
		s.currentLoad--
	}
}

// Profile holds the administrator-editable attributes. Nil fields are left unchanged;
// ClearOperator removes the assigned operator.
type Profile struct {
	Name          *string
	Type          *Type
	Status        *Status
	Capacity      *int
	OperatorID    *kernel.UUID
	ClearOperator bool
}

// Update applies a profile edit. Capacity may not drop below the current load.
func (s *Station) Update(p Profile, now time.Time) error {
	next := *s

	var errList []error
	if p.Name != nil {
		errList = append(errList, next.setName(*p.Name))
	}
	if p.Type != nil {
		errList = append(errList, next.setType(*p.Type))
	}
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			errList = append(errList, err)
		} else {
			next.status = *p.Status
		}
	}
	if p.Capacity != nil {
		if err := next.setCapacity(*p.Capacity); err != nil {
			errList = append(errList, err)
		} else if *p.Capacity < s.currentLoad {
			errList = append(errList, errs.NewValueIsOutOfRangeError("capacity", *p.Capacity, s.currentLoad, math.MaxInt32))
		}
	}
	if p.ClearOperator {
		next.operatorID = nil
	} else if p.OperatorID != nil {
		errList = append(errList, next.setOperator(p.OperatorID))
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	next.updatedAt = now
	*s = next
	return nil
}

func (s *Station) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Station) setType(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	s.kind = kind
	return nil
}

func (s *Station) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}

func (s *Station) setOperator(operatorID *kernel.UUID) error {
	if operatorID == nil {
		s.operatorID = nil
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("operatorId", err)
	}
	id := *operatorID
	s.operatorID = &id
	return nil
}
