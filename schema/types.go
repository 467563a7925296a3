package schema

import (
	"record-mapper/internal/common"
)

// IdentityField is the domain field that is always mapped under the
// external key "Id".
const IdentityField = common.IdentityField

// TypeDef is the statically declared mapping descriptor of one domain type.
type TypeDef struct {
	// Name is the domain type name (e.g. "User").
	Name string `yaml:"name"`

	// External is the external type name (e.g. "Contact"). Empty means the
	// type has no type alias and cannot be a composite-tree node.
	External string `yaml:"external,omitempty"`

	// Fields in declaration order.
	Fields []FieldDef `yaml:"fields,omitempty"`
}

// FieldDef describes how one domain field maps to the external record.
type FieldDef struct {
	// Name is the domain field name.
	Name string `yaml:"name"`

	// Alias is the external field name. Empty means the field is not mapped
	// (except for the identity field).
	Alias string `yaml:"alias,omitempty"`

	// Role is the relationship role of the field.
	Role Role `yaml:"role,omitempty"`

	// Target is the related domain type of a parent or child field.
	Target string `yaml:"target,omitempty"`

	// Kind is the declared scalar kind.
	Kind Kind `yaml:"kind,omitempty"`
}

// IsIdentity reports whether the field is the identity field.
func (f FieldDef) IsIdentity() bool {
	return f.Name == IdentityField
}

// Mapped reports whether the field takes part in mapping at all.
func (f FieldDef) Mapped() bool {
	return f.IsIdentity() || f.Alias != ""
}

// IsParent reports whether the field holds a parent reference.
func (f FieldDef) IsParent() bool {
	return f.Role == RoleParent
}

// IsChild reports whether the field holds a child sequence.
func (f FieldDef) IsChild() bool {
	return f.Role == RoleChild
}

// Field returns the named field, if declared.
func (t TypeDef) Field(name string) (FieldDef, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldDef{}, false
}
