package task

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status is the lifecycle state of a task.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota
	StatusPending
	StatusInProgress
	StatusCompleted
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		StatusCancelled:  "CANCELLED",
	}
}

// ParseStatus converts a persisted or wire name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a task status", s))
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return nil
	case StatusUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Start transitions Pending to InProgress.
func (s Status) Start() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, errs.NewInvalidOperationErrorWithCause(
			"start",
			"task not in startable state",
			fmt.Errorf("status is %s", s),
		)
	}
	return StatusInProgress, nil
}

// Complete transitions InProgress to Completed.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidOperationErrorWithCause(
			"complete",
			"task not in progress",
			fmt.Errorf("status is %s", s),
		)
	}
	return StatusCompleted, nil
}

// Cancel transitions Pending or InProgress to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusInProgress {
		return StatusUnknown, errs.NewInvalidOperationErrorWithCause(
			"cancel",
			"task not in cancellable state",
			fmt.Errorf("status is %s", s),
		)
	}
	return StatusCancelled, nil
}

// Kind distinguishes collecting laundry from a customer and bringing it back.
type Kind int

const (
	KindUnknown Kind = iota
	KindPickup
	KindDelivery
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:  "UNKNOWN",
		KindPickup:   "PICKUP",
		KindDelivery: "DELIVERY",
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(s) {
	case "PICKUP":
		return KindPickup, nil
	case "DELIVERY":
		return KindDelivery, nil
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a task kind", s))
}

func (k Kind) Validate() error {
	if k != KindPickup && k != KindDelivery {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}
