package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

var (
	// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
	// Use errors.Is(err, ErrInvalidTransition) to classify.
	ErrInvalidTransition = errors.New("status transition is not allowed")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	New ──────> Pending ──────> Completed
//	 │             │
//	 └──> Cancelled <──┘
//
// Completed and Cancelled are terminal: no transition leaves them.
// The transition table lives here and nowhere else; callers never
// duplicate it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at checkout.
	// Orders in this status await confirmation by their owner.
	New

	// Pending indicates a confirmed order being processed.
	Pending

	// Completed indicates a fulfilled order. Terminal.
	Completed

	// Cancelled indicates an abandoned or rejected order. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getAllowedTransitions is the single authoritative transition table.
func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		New:     {Pending, Cancelled},
		Pending: {Completed, Cancelled},
	}
}

// StatusFromString parses a persisted or user-supplied status name.
// Returns an error for names outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: New, Pending, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the edge (s -> target) is in the
// transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition to target.
//
// Returns:
//   - (target, nil) when the edge is allowed
//   - (0, *InvalidTransitionError) otherwise
//
// This method is used by Order.ChangeStatus to enforce the state graph.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// InvalidTransitionError reports a rejected status change, carrying both ends
// of the edge so callers can build precise user messages.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the edge (from -> to).
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot change status from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
