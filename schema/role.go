package schema

import (
	"fmt"
)

//go:generate go tool stringer -type=Role -linecomment -output=role_string.go

// Role is the relationship role of a field.
type Role int

const (
	RoleNone   Role = iota // none
	RoleParent             // parent
	RoleChild              // child
)

// ParseRole parses the textual form used in schema files.
// The empty string is RoleNone.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleNone, nil
	}

	for r := RoleNone; r <= RoleChild; r++ {
		if r.String() == s {
			return r, nil
		}
	}

	return RoleNone, fmt.Errorf("unknown field role %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
