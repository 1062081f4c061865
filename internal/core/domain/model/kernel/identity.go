package kernel

import (
	"errors"

	"meddrone/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed is returned when an Identity instance was not
// created through the NewIdentity factory function.
var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is the verified caller of an operation: a user id plus role, as
// resolved by the authentication adapter. The lifecycle engine consumes it
// as data and never inspects credentials itself.
//
// Identity is a value object; the zero value is invalid and fails Validate.
type Identity struct {
	userID UUID
	role   Role
}

// NewIdentity creates an Identity after validating both parts.
func NewIdentity(userID UUID, role Role) (Identity, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause("identity", err)
	}

	return Identity{userID: userID, role: role}, nil
}

// Validate ensures the Identity was properly constructed through NewIdentity.
func (i Identity) Validate() error {
	if err := i.userID.Validate(); err != nil {
		return ErrIdentityIsNotConstructed
	}
	if err := i.role.Validate(); err != nil {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// UserID returns the caller's unique identifier.
func (i Identity) UserID() UUID {
	return i.userID
}

// Role returns the caller's role.
func (i Identity) Role() Role {
	return i.role
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.role == RoleAdmin
}

// IsOperator reports whether the caller holds the operator role.
func (i Identity) IsOperator() bool {
	return i.role == RoleOperator
}

// IsUser reports whether the caller holds the plain user role.
func (i Identity) IsUser() bool {
	return i.role == RoleUser
}
