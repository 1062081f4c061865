package kernel

import (
	"fmt"

	"meddrone/internal/pkg/errs"
)

// Role classifies what an authenticated caller may do:
//
//   - RoleUser requests deliveries and manages only their own
//   - RoleOperator assigns drones and advances delivery status
//   - RoleAdmin does everything, including drone management
//
// Role is a value object; validate values arriving from tokens or storage
// with Validate before use.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is a requester: creates deliveries and sees only their own.
	RoleUser

	// RoleOperator runs deliveries: assigns drones and advances status.
	RoleOperator

	// RoleAdmin has full access, including the drone pool.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleUser:     "user",
		RoleOperator: "operator",
		RoleAdmin:    "admin",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:     "user",
		RoleOperator: "operator",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the wire representation of a role
// ("user", "operator", "admin").
//
// Returns:
//   - Role: the parsed role
//   - error: ValueIsInvalidError for anything else
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are user, operator, and admin.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
