package task

import (
	"fmt"

	"prepcenter/internal/pkg/errs"
)

// Status is the lifecycle position of a task.
type Status int

const (
	Unknown Status = iota
	Pending
	InProgress
	Completed
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	InProgress: "IN_PROGRESS",
	Completed:  "COMPLETED",
	Cancelled:  "CANCELLED",
}

func ParseStatus(name string) (Status, error) {
	return parse(statusNames, name, "status")
}

func (s Status) Validate() error { return validate(statusNames, s, "status") }

func (s Status) String() string { return nameOf(statusNames, s) }

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Priority orders pending work for operators.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

var priorityNames = map[Priority]string{
	PriorityLow:    "LOW",
	PriorityMedium: "MEDIUM",
	PriorityHigh:   "HIGH",
	PriorityUrgent: "URGENT",
}

func ParsePriority(name string) (Priority, error) {
	return parse(priorityNames, name, "priority")
}

func (p Priority) Validate() error { return validate(priorityNames, p, "priority") }

func (p Priority) String() string { return nameOf(priorityNames, p) }

// Type classifies the kind of work a task represents.
type Type int

const (
	TypeUnknown Type = iota
	TypeReceive
	TypeInspect
	TypePrep
	TypeQC
	TypeShip
	TypeCustom
)

var typeNames = map[Type]string{
	TypeReceive: "RECEIVE",
	TypeInspect: "INSPECT",
	TypePrep:    "PREP",
	TypeQC:      "QC",
	TypeShip:    "SHIP",
	TypeCustom:  "CUSTOM",
}

func ParseType(name string) (Type, error) {
	return parse(typeNames, name, "type")
}

func (t Type) Validate() error { return validate(typeNames, t, "type") }

func (t Type) String() string { return nameOf(typeNames, t) }

func parse[E ~int](names map[E]string, name, param string) (E, error) {
	for value, n := range names {
		if n == name {
			return value, nil
		}
	}
	var zero E
	return zero, errs.NewValueIsInvalidErrorWithCause(param+" is invalid", fmt.Errorf("%q is not a task %s", name, param))
}

func validate[E ~int](names map[E]string, value E, param string) error {
	if _, ok := names[value]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(param+" is invalid", fmt.Errorf("%d is not a valid %s", int(value), param))
	}
	return nil
}

func nameOf[E ~int](names map[E]string, value E) string {
	if name, ok := names[value]; ok {
		return name
	}
	return "UNKNOWN"
}
