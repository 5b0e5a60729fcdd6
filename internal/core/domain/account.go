package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of access classes an account can belong to.
// The numeric values match the ids seeded in the roles table.
type Role int

const (
	RoleGeneralUser   Role = 1
	RoleAdministrator Role = 2
)

var roleNames = map[Role]string{
	RoleGeneralUser:   "General User",
	RoleAdministrator: "Administrator",
}

var ErrInvalidUsername = errors.New("username must be between 5 and 20 characters")
var ErrWeakPassword = errors.New("password must be at least 8 characters and contain a letter and a digit")
var ErrInvalidEmail = errors.New("email address is not valid")
var ErrInvalidRole = errors.New("unknown role")
var ErrUsernameOrEmailTaken = errors.New("username or email already taken")
var ErrAccountNotFound = errors.New("account not found")
var ErrWrongPassword = errors.New("wrong password")

// EditError reports which field of an edit failed validation. Fields applied
// earlier in the same edit call stay committed (see AccountService.EditAccount).
type EditError struct {
	Field string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit validation failed for field %q", e.Field)
}

// ParseRole maps a user-supplied role selection to a Role.
func ParseRole(selection int) (Role, error) {
	r := Role(selection)
	if _, ok := roleNames[r]; !ok {
		return 0, ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Name returns the human-readable role name as seeded in the roles table.
func (r Role) Name() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Account is a registered user's persisted identity. Credential holds the
// bcrypt hash of the password, never the plaintext.
type Account struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	Credential string    `json:"-"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
