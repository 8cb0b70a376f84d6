package station

import (
	"fmt"

	"prepcenter/internal/pkg/errs"
)

// Status controls whether a station accepts new work.
type Status int

const (
	StatusUnknown Status = iota
	Active
	Inactive
)

var statusNames = map[Status]string{
	Active:   "ACTIVE",
	Inactive: "INACTIVE",
}

func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a station status", name))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Type is the kind of work performed at a station.
type Type int

const (
	TypeUnknown Type = iota
	Receiving
	Inspection
	Prep
	QC
	Shipping
)

var typeNames = map[Type]string{
	Receiving:  "RECEIVING",
	Inspection: "INSPECTION",
	Prep:       "PREP",
	QC:         "QC",
	Shipping:   "SHIPPING",
}

func ParseType(name string) (Type, error) {
	for kind, n := range typeNames {
		if n == name {
			return kind, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a station type", name))
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid type", int(t)))
	}
	return nil
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
