package account

import (
	"errors"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	// ErrInvalidUserState is returned when an authenticated session lacks the
	// identity fields every role-gated decision depends on. It is fatal for
	// the session: no role-correct behavior is derivable, so dependent
	// polling must not start.
	ErrInvalidUserState = errors.New("authenticated user is missing name, email, or roles")
)

// User represents the authenticated user driving a session.
//
// User follows these invariants:
//   - Must have a non-empty display name and email
//   - Must hold at least one valid role
//   - Can only be created through the NewUser constructor
//
// The laboratory feature flag lives on the company record, not on the user:
// all users of one organization share the same workflow shape.
type User struct {
	name       string
	email      string
	roles      []Role
	labEnabled bool

	isConstructed bool
}

// NewUser creates a validated User. A user missing a name, email, or any
// role is rejected with ErrInvalidUserState, since the change-detection and
// notification pipeline cannot behave correctly without knowing who is
// watching.
func NewUser(name, email string, roles []Role, labEnabled bool) (User, error) {
	if name == "" || email == "" || len(roles) == 0 {
		return User{}, ErrInvalidUserState
	}

	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return User{}, ErrInvalidUserState
		}
	}

	copied := make([]Role, len(roles))
	copy(copied, roles)

	return User{
		name:          name,
		email:         email,
		roles:         copied,
		labEnabled:    labEnabled,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u User) Validate() error {
	if !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Name returns the user's display name.
func (u User) Name() string {
	return u.name
}

// Email returns the user's email address.
func (u User) Email() string {
	return u.email
}

// Roles returns a copy of the user's role set.
func (u User) Roles() []Role {
	copied := make([]Role, len(u.roles))
	copy(copied, u.roles)
	return copied
}

// HasRole reports whether the user holds the given role.
func (u User) HasRole(role Role) bool {
	for _, r := range u.roles {
		if r == role {
			return true
		}
	}
	return false
}

// LabEnabled reports whether the user's company has the laboratory workflow
// switched on.
func (u User) LabEnabled() bool {
	return u.labEnabled
}
