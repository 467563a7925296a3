package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"record-mapper/internal/common"
	"record-mapper/internal/diagnostic"
	"record-mapper/internal/match"
	"record-mapper/schema"
)

// Diagnostic codes reported by extraction.
const (
	CodeInvalidRole    = "invalid_role"
	CodeEmptyAlias     = "empty_alias"
	CodeChildNotSlice  = "child_not_slice"
	CodeNotStructRef   = "not_struct_reference"
	CodeUnmappedTarget = "unmapped_target"
	CodeIdentityTagged = "identity_tag_ignored"
)

// Extractor turns the annotated structs of a type graph into schema
// declarations. Domain type names are the Go type names.
type Extractor struct {
	graph *TypeGraph
}

// NewExtractor creates an Extractor over graph.
func NewExtractor(graph *TypeGraph) *Extractor {
	return &Extractor{graph: graph}
}

// Extract loads patterns and extracts their annotated structs.
func Extract(dir string, patterns ...string) ([]schema.TypeDef, *diagnostic.Diagnostics, error) {
	a := NewAnalyzer()
	a.Dir = dir

	graph, err := a.LoadPackages(patterns...)
	if err != nil {
		return nil, nil, err
	}

	defs, diags := NewExtractor(graph).Extract()

	return defs, diags, nil
}

// Extract returns one TypeDef per struct carrying the object directive, in
// package path then source order. Fields without an sf tag are left out.
func (e *Extractor) Extract() ([]schema.TypeDef, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var defs []schema.TypeDef
	for _, info := range e.mappedTypes() {
		defs = append(defs, e.typeDef(info, diags))
	}

	return defs, diags
}

func (e *Extractor) mappedTypes() []*TypeInfo {
	paths := make([]string, 0, len(e.graph.Packages))
	for path := range e.graph.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var out []*TypeInfo
	for _, path := range paths {
		for _, id := range e.graph.Packages[path].Types {
			if info := e.graph.GetType(id); info != nil && info.Mapped() {
				out = append(out, info)
			}
		}
	}

	return out
}

func (e *Extractor) typeDef(info *TypeInfo, diags *diagnostic.Diagnostics) schema.TypeDef {
	def := schema.TypeDef{
		Name:     info.ID.Name,
		External: info.External,
	}

	for _, f := range info.Fields {
		alias, roleName, ok := f.SFTag()
		if !ok {
			continue
		}

		if f.Name == common.IdentityField {
			diags.AddWarning(CodeIdentityTagged,
				"identity field is always mapped under \"Id\"; its tag is ignored", def.Name, f.Name)

			continue
		}

		if alias == "" {
			diags.AddError(CodeEmptyAlias, "sf tag has an empty alias", def.Name, f.Name)
			continue
		}

		role, err := schema.ParseRole(roleName)
		if err != nil {
			diags.AddError(CodeInvalidRole, err.Error(), def.Name, f.Name,
				match.Closest(roleName, []string{schema.RoleParent.String(), schema.RoleChild.String()}, 1)...)

			continue
		}

		fd := schema.FieldDef{Name: f.Name, Alias: alias, Role: role}

		switch role {
		case schema.RoleChild:
			if f.Type.Kind != TypeKindSlice {
				diags.AddError(CodeChildNotSlice,
					fmt.Sprintf("child field has type %s, want a slice of a mapped struct", f.Type.GoType),
					def.Name, f.Name)

				continue
			}

			fd.Target = e.target(def.Name, f, f.Type.ElemType.Deref(), diags)

		case schema.RoleParent:
			fd.Target = e.target(def.Name, f, f.Type.Deref(), diags)

		default:
			fd.Kind = kindOf(f.Type)
		}

		def.Fields = append(def.Fields, fd)
	}

	return def
}

// target resolves the domain type a relationship field points at.
func (e *Extractor) target(typeName string, f FieldInfo, elem *TypeInfo, diags *diagnostic.Diagnostics) string {
	if elem.Kind != TypeKindStruct || !elem.IsNamed() {
		diags.AddError(CodeNotStructRef,
			fmt.Sprintf("relationship field has type %s, want a named struct", f.Type.GoType),
			typeName, f.Name)

		return ""
	}

	if info := e.graph.GetType(elem.ID); info == nil || !info.Mapped() {
		diags.AddError(CodeUnmappedTarget,
			fmt.Sprintf("target %s has no %s directive", elem.ID, ObjectDirective),
			typeName, f.Name)
	}

	return elem.ID.Name
}

// kindOf infers the scalar kind of a field type.
func kindOf(t *TypeInfo) schema.Kind {
	t = t.Deref()

	switch t.Kind {
	case TypeKindBasic:
		basic, ok := t.GoType.Underlying().(*types.Basic)
		if !ok {
			return schema.KindAny
		}

		switch info := basic.Info(); {
		case info&types.IsString != 0:
			return schema.KindString
		case info&types.IsBoolean != 0:
			return schema.KindBool
		case info&types.IsNumeric != 0:
			return schema.KindNumber
		}
	case TypeKindExternal:
		if t.ID == (TypeID{PkgPath: "time", Name: "Time"}) {
			return schema.KindDateTime
		}
	}

	return schema.KindAny
}
