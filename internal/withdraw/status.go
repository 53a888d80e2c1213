package withdraw

import (
	"fmt"

	"github.com/cyssxt/yunchaoplus-wallet/internal/record"
)

// Status is the withdrawal lifecycle state.
type Status string

const (
	StatusCreated   Status = "created"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// ErrIllegalTransition is returned by the strict repositories when the
// requested target is not reachable from the record's current status. It is
// an invalid-input kind, so callers answer it the same way as a rejected
// target value.
var ErrIllegalTransition = fmt.Errorf("%w: illegal status transition", record.ErrInvalidInput)

// ParseStatus validates a wire status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusCreated, StatusPending, StatusSucceeded, StatusFailed, StatusCanceled:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q", record.ErrInvalidInput, s)
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// Updatable reports whether clients may request s as a transition target.
// Only pending and canceled are reachable through the update operation;
// succeeded and failed are settled out of band.
func (s Status) Updatable() bool {
	return s == StatusPending || s == StatusCanceled
}

// transitions is the full state machine:
// created -> pending -> succeeded | failed, created|pending -> canceled.
var transitions = map[Status]map[Status]bool{
	StatusCreated: {StatusPending: true, StatusCanceled: true},
	StatusPending: {StatusSucceeded: true, StatusFailed: true, StatusCanceled: true},
}

// CanTransition reports whether the state machine allows moving from one
// status to another. Terminal states allow nothing.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// checkTarget rejects targets that clients may never request, before any
// store access.
func checkTarget(target Status) error {
	if !target.Updatable() {
		return fmt.Errorf("%w: status %q cannot be requested", record.ErrInvalidInput, target)
	}
	return nil
}
