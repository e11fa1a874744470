package user

import "errors"

// Role decides which pages and actions a user may use.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleInstructor Role = "INSTRUCTOR"
)

var ErrUnknownRole = errors.New("user: unknown role")

// ParseRole accepts the role names used by the API.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleStudent, RoleInstructor:
		return r, nil
	}
	return "", ErrUnknownRole
}

func (r Role) String() string { return string(r) }

// Label is the Korean name shown in the UI.
func (r Role) Label() string {
	switch r {
	case RoleInstructor:
		return "강사"
	case RoleStudent:
		return "수강생"
	}
	return string(r)
}

// User is the account returned by the API on login.
type User struct {
	ID    int64  `json:"id" yaml:"id"`
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Role  Role   `json:"role" yaml:"role"`
}

func (u *User) IsInstructor() bool { return u != nil && u.Role == RoleInstructor }
func (u *User) IsStudent() bool    { return u != nil && u.Role == RoleStudent }

// HasRole reports whether u holds one of roles.
func (u *User) HasRole(roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}
