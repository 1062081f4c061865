package delivery

import (
	"fmt"

	"meddrone/internal/pkg/errs"
)

// Priority ranks how urgent a delivery request is. It does not change the
// state machine; it exists for operators to order their work.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow marks routine restocking runs.
	PriorityLow

	// PriorityNormal is the default for new requests.
	PriorityNormal

	// PriorityHigh marks time-sensitive payloads.
	PriorityHigh

	// PriorityEmergency marks life-critical payloads.
	PriorityEmergency
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:   "unknown",
		PriorityLow:       "low",
		PriorityNormal:    "normal",
		PriorityHigh:      "high",
		PriorityEmergency: "emergency",
	}
}

func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:       "low",
		PriorityNormal:    "normal",
		PriorityHigh:      "high",
		PriorityEmergency: "emergency",
	}
}

// PriorityFromString parses the wire representation of a priority.
// The empty string maps to PriorityNormal, matching the create operation's
// default when the caller omits the field.
func PriorityFromString(s string) (Priority, error) {
	if s == "" {
		return PriorityNormal, nil
	}
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire name of the priority, or "unknown" for invalid values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "unknown"
}
