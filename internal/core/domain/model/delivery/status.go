package delivery

import (
	"fmt"

	"meddrone/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions:
//
//	pending ──> preparing ──> in-transit ──> delivered
//	   │            │              │
//	   │            │              └──────> failed
//	   ├────────────┼──────────────────────> failed
//	   └────────────┴──────────────────────> cancelled
//
// delivered, cancelled, and failed are terminal: no transition leaves them.
// Beyond the terminal check, advancement is permissive: adjacency is not
// enforced, so pending straight to delivered is accepted through the
// status-update operation.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: requested, no operator or drone yet.
	StatusPending

	// StatusPreparing means an operator claimed the delivery and a drone is bound.
	StatusPreparing

	// StatusInTransit means the drone is flying the payload.
	StatusInTransit

	// StatusDelivered is the terminal success state.
	StatusDelivered

	// StatusCancelled is the terminal state for withdrawn deliveries.
	StatusCancelled

	// StatusFailed is the terminal state for deliveries that could not complete.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusInTransit: "in-transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
		StatusFailed:    "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusPreparing: "preparing",
		StatusInTransit: "in-transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
		StatusFailed:    "failed",
	}
}

// StatusFromString parses the wire representation of a status
// ("pending", "preparing", "in-transit", "delivered", "cancelled", "failed").
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// ValidateAssign checks that a drone may be assigned from the current status.
// Only pending deliveries are assignable; anything else is a state conflict
// (the delivery is either already claimed or already finished).
func (s Status) ValidateAssign() error {
	if s != StatusPending {
		return errs.NewStateConflictErrorWithCause(
			"delivery is not pending",
			fmt.Errorf("cannot assign a drone while status is %s", s.String()),
		)
	}
	return nil
}

// ValidateAdvanceTarget checks that target is a status the update operation
// may request: any valid status except pending (a delivery never returns to
// its initial state).
func (s Status) ValidateAdvanceTarget(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == StatusPending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move a delivery back to %s", target.String()),
		)
	}
	return nil
}

// Assign transitions the status to preparing.
//
// Valid transitions:
//   - pending -> preparing
//
// Returns (0, error) with a state conflict for any other source status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return StatusPreparing, nil
}

// AdvanceTo transitions to target via the status-update operation. The
// source must be non-terminal and the target a valid advance target; no
// further adjacency is enforced.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := s.ValidateAdvanceTarget(target); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewStateConflictErrorWithCause(
			"delivery is in a terminal status",
			fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}

// Cancel transitions the status to cancelled.
//
// Valid transitions:
//   - pending -> cancelled
//   - preparing -> cancelled
//
// In-transit and terminal deliveries cannot be cancelled; the status-update
// operation handles in-flight failures instead.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusPreparing {
		return 0, errs.NewStateConflictErrorWithCause(
			"cannot cancel delivery in current status",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	return StatusCancelled, nil
}
