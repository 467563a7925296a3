package object

import (
	"fmt"

	"record-mapper/internal/common"
	"record-mapper/record"
	"record-mapper/schema"
)

// Decode builds an object of typeName from a generic JSON object keyed by
// domain field names (a *record.Record or map[string]any). Parent fields
// must hold an object and child fields an array of objects; both decode
// against the field's target type. Keys the schema does not declare are
// kept as local, unmapped values.
func Decode(reg *schema.Registry, typeName string, v any) (*Object, error) {
	return decode(reg, typeName, v, common.NewPath(typeName))
}

func decode(reg *schema.Registry, typeName string, v any, path common.Path) (*Object, error) {
	src, ok := record.AsRecord(v)
	if !ok {
		return nil, fmt.Errorf("%s: expected an object, got %T", path, v)
	}

	def, _ := reg.Type(typeName)
	obj := New(typeName)

	for _, key := range src.Keys() {
		val, _ := src.Get(key)
		field, declared := def.Field(key)

		switch {
		case !declared || field.Role == schema.RoleNone || val == nil:
			obj.Set(key, val)

		case field.IsParent():
			if field.Target == "" {
				return nil, fmt.Errorf("%s: parent field has no target type", path.Field(key))
			}

			parent, err := decode(reg, field.Target, val, path.Field(key))
			if err != nil {
				return nil, err
			}

			obj.Set(key, parent)

		default:
			if field.Target == "" {
				return nil, fmt.Errorf("%s: child field has no target type", path.Field(key))
			}

			items, ok := val.([]any)
			if !ok {
				return nil, fmt.Errorf("%s: expected an array, got %T", path.Field(key), val)
			}

			children := make([]*Object, 0, len(items))
			for i, item := range items {
				child, err := decode(reg, field.Target, item, path.Field(key).Index(i))
				if err != nil {
					return nil, err
				}

				children = append(children, child)
			}

			obj.Set(key, children)
		}
	}

	return obj, nil
}

// Template builds an empty template of typeName for hydration. Parent and
// child fields with a target type get a nested template (a child template
// is a one-element sequence); a type already on the current path is not
// expanded again, so mutually referencing types stay finite.
func Template(reg *schema.Registry, typeName string) *Object {
	return template(reg, typeName, map[string]bool{})
}

func template(reg *schema.Registry, typeName string, onPath map[string]bool) *Object {
	obj := New(typeName)
	onPath[typeName] = true

	defer delete(onPath, typeName)

	for _, f := range reg.Fields(typeName) {
		if f.Target == "" || onPath[f.Target] {
			continue
		}

		switch f.Role {
		case schema.RoleParent:
			obj.Set(f.Name, template(reg, f.Target, onPath))
		case schema.RoleChild:
			obj.Set(f.Name, []*Object{template(reg, f.Target, onPath)})
		}
	}

	return obj
}
