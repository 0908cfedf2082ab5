package order

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Status is the fulfilment state of an order. It is a finite enum so that
// further states can be added later.
//
// State transitions:
//
//	Pending(0) ──> Delivered(1)
//
// Setting the current status again is a no-op. Delivered is terminal.
type Status int

const (
	Pending   Status = 0
	Delivered Status = 1
)

// ParseStatus converts a wire value into a Status. Any value outside
// {0, 1} is a validation error.
func ParseStatus(v int) (Status, error) {
	s := Status(v)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// Validate rejects values other than Pending and Delivered.
func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Delivered))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Delivered:
		return "Delivered"
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo returns next if the move from s is allowed.
//
// Allowed:
//   - Pending -> Pending, Pending -> Delivered
//   - Delivered -> Delivered
//
// Rejected:
//   - Delivered -> Pending
//   - any move to or from an invalid value
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() && next != s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is a terminal status and cannot change to %s", s, next),
		)
	}
	return next, nil
}
