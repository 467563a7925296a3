package schema

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFrozen is returned by every write after Freeze.
var ErrFrozen = errors.New("schema registry is frozen")

// Registry stores mapping metadata keyed by domain type, and by domain type
// and field. Lookups on unknown keys report absence, never an error.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]*typeEntry
	order  []string
	frozen bool
}

type typeEntry struct {
	name     string
	external string
	fields   map[string]*fieldEntry
	order    []string
}

// fieldEntry keeps alias and role tags independent; the engine combines them.
type fieldEntry struct {
	alias  string
	parent bool
	child  bool
	target string
	kind   Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*typeEntry)}
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

// SetTypeAlias sets the external type name of a domain type.
func (r *Registry) SetTypeAlias(typeName, external string) error {
	return r.write(func() {
		r.typeLocked(typeName).external = external
	})
}

// GetTypeAlias returns the external type name of a domain type.
func (r *Registry) GetTypeAlias(typeName string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[typeName]
	if !ok || t.external == "" {
		return "", false
	}

	return t.external, true
}

// SetFieldAlias sets the external alias of a field.
func (r *Registry) SetFieldAlias(typeName, field, alias string) error {
	return r.write(func() {
		r.fieldLocked(typeName, field).alias = alias
	})
}

// GetFieldAlias returns the external alias of a field.
func (r *Registry) GetFieldAlias(typeName, field string) (string, bool) {
	f := r.lookup(typeName, field)
	if f == nil || f.alias == "" {
		return "", false
	}

	return f.alias, true
}

// MarkParent tags a field as a to-one parent reference.
func (r *Registry) MarkParent(typeName, field string) error {
	return r.write(func() {
		r.fieldLocked(typeName, field).parent = true
	})
}

// IsParent reports whether a field is tagged parent-role.
func (r *Registry) IsParent(typeName, field string) bool {
	f := r.lookup(typeName, field)
	return f != nil && f.parent
}

// MarkChild tags a field as a to-many child collection.
func (r *Registry) MarkChild(typeName, field string) error {
	return r.write(func() {
		r.fieldLocked(typeName, field).child = true
	})
}

// IsChild reports whether a field is tagged child-role.
func (r *Registry) IsChild(typeName, field string) bool {
	f := r.lookup(typeName, field)
	return f != nil && f.child
}

// SetFieldTarget sets the related domain type of a parent or child field.
func (r *Registry) SetFieldTarget(typeName, field, target string) error {
	return r.write(func() {
		r.fieldLocked(typeName, field).target = target
	})
}

// GetFieldTarget returns the related domain type of a field.
func (r *Registry) GetFieldTarget(typeName, field string) (string, bool) {
	f := r.lookup(typeName, field)
	if f == nil || f.target == "" {
		return "", false
	}

	return f.target, true
}

// SetFieldKind sets the declared scalar kind of a field.
func (r *Registry) SetFieldKind(typeName, field string, kind Kind) error {
	return r.write(func() {
		r.fieldLocked(typeName, field).kind = kind
	})
}

// Declare registers a whole type descriptor. A field named again replaces
// its earlier entry wholesale, keeping only its position in the field order;
// an empty External leaves the type's external name unchanged.
func (r *Registry) Declare(defs ...TypeDef) error {
	for _, def := range defs {
		if def.Name == "" {
			return errors.New("type declaration without a name")
		}

		err := r.write(func() {
			t := r.typeLocked(def.Name)
			if def.External != "" {
				t.external = def.External
			}

			for _, fd := range def.Fields {
				*r.fieldLocked(def.Name, fd.Name) = fieldEntry{
					alias:  fd.Alias,
					parent: fd.Role == RoleParent,
					child:  fd.Role == RoleChild,
					target: fd.Target,
					kind:   fd.Kind,
				}
			}
		})
		if err != nil {
			return fmt.Errorf("declare %s: %w", def.Name, err)
		}
	}

	return nil
}

// MustDeclare is Declare for package initialization; it panics on error.
func (r *Registry) MustDeclare(defs ...TypeDef) {
	if err := r.Declare(defs...); err != nil {
		panic(err)
	}
}

// Has reports whether the type was registered.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[typeName]

	return ok
}

// TypeNames returns registered domain type names in registration order.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// ByExternalName returns the domain type registered under an external name.
// When several types share it, the first registered wins.
func (r *Registry) ByExternalName(external string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		if r.types[name].external == external {
			return name, true
		}
	}

	return "", false
}

// Type returns a snapshot of a registered type.
func (r *Registry) Type(typeName string) (TypeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[typeName]
	if !ok {
		return TypeDef{}, false
	}

	return t.snapshot(), true
}

// Types returns snapshots of all registered types in registration order.
func (r *Registry) Types() []TypeDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]TypeDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.types[name].snapshot())
	}

	return out
}

// Fields returns the field set of a type in declaration order, with the
// identity field first. Unknown types have only the identity field.
func (r *Registry) Fields(typeName string) []FieldDef {
	identity := FieldDef{Name: IdentityField}

	def, ok := r.Type(typeName)
	if !ok {
		return []FieldDef{identity}
	}

	out := make([]FieldDef, 0, len(def.Fields)+1)
	out = append(out, identity)

	for _, f := range def.Fields {
		if f.IsIdentity() {
			continue
		}

		out = append(out, f)
	}

	return out
}

func (t *typeEntry) snapshot() TypeDef {
	def := TypeDef{Name: t.name, External: t.external}
	for _, name := range t.order {
		def.Fields = append(def.Fields, t.fields[name].def(name))
	}

	return def
}

// def resolves the role tags to one Role. Parent wins over child, matching
// the order the engine checks them; Validate reports the conflict.
func (f *fieldEntry) def(name string) FieldDef {
	role := RoleNone

	switch {
	case f.parent:
		role = RoleParent
	case f.child:
		role = RoleChild
	}

	return FieldDef{Name: name, Alias: f.alias, Role: role, Target: f.target, Kind: f.kind}
}

func (r *Registry) write(fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}

	fn()

	return nil
}

func (r *Registry) lookup(typeName, field string) *fieldEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[typeName]
	if !ok {
		return nil
	}

	return t.fields[field]
}

// typeLocked returns the entry for typeName, creating it. Caller holds mu.
func (r *Registry) typeLocked(typeName string) *typeEntry {
	t, ok := r.types[typeName]
	if !ok {
		t = &typeEntry{name: typeName, fields: make(map[string]*fieldEntry)}
		r.types[typeName] = t
		r.order = append(r.order, typeName)
	}

	return t
}

// fieldLocked returns the entry for a field, creating it. Caller holds mu.
func (r *Registry) fieldLocked(typeName, field string) *fieldEntry {
	t := r.typeLocked(typeName)

	f, ok := t.fields[field]
	if !ok {
		f = &fieldEntry{}
		t.fields[field] = f
		t.order = append(t.order, field)
	}

	return f
}

// conflicts reports fields tagged both parent and child.
func (r *Registry) conflicts(typeName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[typeName]
	if !ok {
		return nil
	}

	var out []string

	for _, name := range t.order {
		if f := t.fields[name]; f.parent && f.child {
			out = append(out, name)
		}
	}

	return out
}
