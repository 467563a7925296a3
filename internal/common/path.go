package common

import (
	"strconv"
	"strings"
)

// Path builds a readable location inside an object graph.
// Examples:
//   - "Account" for a root
//   - "Account.Users" for a child field
//   - "Account.Users[1]" for one element of a child field
//   - "Account.Users[1].Account" for a parent reference below it
type Path struct {
	parts []string
}

// NewPath creates a new Path from a root type name.
func NewPath(root string) Path {
	return Path{parts: []string{root}}
}

// Field appends a field name to the path.
func (p Path) Field(name string) Path {
	return Path{parts: append(append([]string{}, p.parts...), name)}
}

// Index marks the last segment as the i-th element of a sequence.
func (p Path) Index(i int) Path {
	if len(p.parts) == 0 {
		return Path{parts: []string{"[" + strconv.Itoa(i) + "]"}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += "[" + strconv.Itoa(i) + "]"

	return Path{parts: parts}
}

// String returns the full path string.
func (p Path) String() string {
	return strings.Join(p.parts, ".")
}
