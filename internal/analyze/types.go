package analyze

import (
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"record-mapper/internal/common"
)

// TagKey is the struct tag read for field aliases and roles.
const TagKey = "sf"

// ObjectDirective marks a struct as a mapped domain type.
const ObjectDirective = "//sf:object"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "record-mapper/crm"
	Name    string // e.g., "Account"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindExternal          // named type from an unloaded package (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID       TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind     TypeKind    // Kind of type
	ElemType *TypeInfo   // For pointers and slices, the element type
	Fields   []FieldInfo // For structs, the list of fields
	GoType   types.Type  // The original go/types.Type

	// External is the name given by the object directive, empty when the
	// struct carries none.
	External string
	// Pos is the declaration position; extraction follows source order.
	Pos token.Position
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Mapped reports whether the type carries the object directive.
func (t *TypeInfo) Mapped() bool {
	return t.External != ""
}

// Deref returns the element type of a pointer, or t itself.
func (t *TypeInfo) Deref() *TypeInfo {
	if t.Kind == TypeKindPointer && t.ElemType != nil {
		return t.ElemType
	}

	return t
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name string            // Go field name
	Type *TypeInfo         // Field type
	Tag  reflect.StructTag // Raw struct tag
}

// SFTag splits the sf tag into alias and role name. ok is false when the
// field has no sf tag or the tag is "-".
func (f *FieldInfo) SFTag() (alias, role string, ok bool) {
	tag, ok := f.Tag.Lookup(TagKey)
	if !ok || tag == "-" {
		return "", "", false
	}

	alias, role, _ = strings.Cut(tag, ",")

	return strings.TrimSpace(alias), strings.TrimSpace(role), true
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
