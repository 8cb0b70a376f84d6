package shipment

import (
	"errors"
	"fmt"

	"prepcenter/internal/pkg/errs"
)

// ErrStatusIsTerminal is returned by Status.Next for DELIVERED.
var ErrStatusIsTerminal = errors.New("status has no successor")

// Status is the position of a shipment in the prep-center pipeline.
//
// State transitions (operator scan):
//
//	Draft -> Received -> Inspecting -> Prepping -> QualityCheck -> ReadyToShip -> Shipped -> Delivered
//
// Administrators may jump to any valid status regardless of the current one.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Draft
	Received
	Inspecting
	Prepping
	QualityCheck
	ReadyToShip
	Shipped
	Delivered
)

// pipeline lists the valid statuses in scan order.
var pipeline = []Status{Draft, Received, Inspecting, Prepping, QualityCheck, ReadyToShip, Shipped, Delivered}

var statusNames = map[Status]string{
	Draft:        "DRAFT",
	Received:     "RECEIVED",
	Inspecting:   "INSPECTING",
	Prepping:     "PREPPING",
	QualityCheck: "QUALITY_CHECK",
	ReadyToShip:  "READY_TO_SHIP",
	Shipped:      "SHIPPED",
	Delivered:    "DELIVERED",
}

// Statuses returns every valid status in pipeline order.
func Statuses() []Status {
	out := make([]Status, len(pipeline))
	copy(out, pipeline)
	return out
}

// ParseStatus converts a wire name such as "QUALITY_CHECK" into a Status.
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a shipment status", name))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether an operator scan can move past this status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Next returns the successor in the pipeline.
//
// Returns:
//   - (successor, nil) for Draft through Shipped
//   - (Unknown, ErrStatusIsTerminal) for Delivered
//   - (Unknown, validation error) for invalid values
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, ErrStatusIsTerminal
	}
	return pipeline[s.index()+1], nil
}

func (s Status) index() int {
	for i, p := range pipeline {
		if p == s {
			return i
		}
	}
	return -1
}
