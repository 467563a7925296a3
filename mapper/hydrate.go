package mapper

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"record-mapper/internal/common"
	"record-mapper/object"
	"record-mapper/record"
	"record-mapper/schema"
)

// Hydrate builds a new domain object of the template's type from an
// external record (a *record.Record or map[string]any).
//
// The template supplies the type and, optionally, nested templates: the
// object held by a parent field and the first element of a child field.
// Where the template has none, an empty object of the field's target type
// is used. Scalar values are copied verbatim unless the mapper uses strict
// kinds.
func (m *Mapper) Hydrate(template *object.Object, src any) (*object.Object, error) {
	if template == nil {
		return nil, schemaMismatch(common.NewPath("<nil>"), "", nil, "nil template")
	}

	if m.logger.IsLevelEnabled(logrus.TraceLevel) {
		m.logger.Tracef("hydrating %s from %s", template.Type(), spew.Sdump(record.Plain(src)))
	}

	return m.hydrate(template, src, common.NewPath(template.Type()))
}

func (m *Mapper) hydrate(tmpl *object.Object, src any, path common.Path) (*object.Object, error) {
	rec, ok := record.AsRecord(src)
	if !ok {
		return nil, schemaMismatch(path, tmpl.Type(), nil, "expected a record, got %T", src)
	}

	if err := m.checkRecordType(tmpl, rec, path); err != nil {
		return nil, err
	}

	out := object.New(tmpl.Type())

	for _, f := range m.registry.Fields(tmpl.Type()) {
		if f.IsIdentity() {
			v, _ := rec.Get(record.IDKey)
			out.Set(f.Name, v)

			continue
		}

		if f.Alias == "" {
			m.skipUnmapped(tmpl.Type(), f.Name)
			continue
		}

		v, present := rec.Get(f.Alias)
		if !present || v == nil {
			continue
		}

		switch {
		case f.IsParent():
			if err := m.hydrateParent(out, tmpl, f, v, path); err != nil {
				return nil, err
			}

		case f.IsChild():
			if err := m.hydrateChildren(out, tmpl, f, v, path); err != nil {
				return nil, err
			}

		default:
			if m.strictKinds && !f.Kind.Accepts(v) {
				return nil, schemaMismatch(path.Field(f.Name), tmpl.Type(), nil,
					"value %#v is not a valid %s", v, f.Kind)
			}

			out.Set(f.Name, v)
		}
	}

	return out, nil
}

func (m *Mapper) hydrateParent(out, tmpl *object.Object, f schema.FieldDef, v any, path common.Path) error {
	fieldPath := path.Field(f.Name)

	nested, ok := record.AsRecord(v)
	if !ok {
		return schemaMismatch(fieldPath, tmpl.Type(), nil, "parent field holds %T, not a record", v)
	}

	if nested.Len() == 0 {
		m.logger.WithFields(logrus.Fields{"type": tmpl.Type(), "field": f.Name}).
			Debug("empty parent record, leaving field unset")

		return nil
	}

	ptmpl, ok := tmpl.Parent(f.Name)
	if !ok {
		if f.Target == "" {
			return schemaMismatch(fieldPath, tmpl.Type(), nil, "no parent template and no target type")
		}

		ptmpl = object.New(f.Target)
	}

	parent, err := m.hydrate(ptmpl, nested, fieldPath)
	if err != nil {
		return err
	}

	out.Set(f.Name, parent)

	return nil
}

// hydrateChildren leaves the field unset when the collection has no records.
func (m *Mapper) hydrateChildren(out, tmpl *object.Object, f schema.FieldDef, v any, path common.Path) error {
	fieldPath := path.Field(f.Name)

	recs, err := record.RecordsOf(v)
	if err != nil {
		return schemaMismatch(fieldPath, tmpl.Type(), err, "child field is not a records collection")
	}

	if common.IsEmpty(recs) {
		return nil
	}

	ctmpl, err := childTemplate(tmpl, f, fieldPath)
	if err != nil {
		return err
	}

	children := make([]*object.Object, 0, len(recs))
	for i, rec := range recs {
		child, err := m.hydrate(ctmpl, rec, fieldPath.Index(i))
		if err != nil {
			return err
		}

		children = append(children, child)
	}

	out.Set(f.Name, children)

	return nil
}

// childTemplate returns the single template every child row hydrates against.
func childTemplate(tmpl *object.Object, f schema.FieldDef, path common.Path) (*object.Object, error) {
	if children, ok := tmpl.Children(f.Name); ok {
		if first, ok := common.First(children); ok && first != nil {
			return first, nil
		}
	}

	if f.Target == "" {
		return nil, schemaMismatch(path, tmpl.Type(), nil, "no child template and no target type")
	}

	return object.New(f.Target), nil
}

// checkRecordType rejects a record whose attributes name another external
// type than the template's.
func (m *Mapper) checkRecordType(tmpl *object.Object, rec *record.Record, path common.Path) error {
	attrs, ok := rec.Attributes()
	if !ok || attrs.Type == "" {
		return nil
	}

	external, ok := m.registry.GetTypeAlias(tmpl.Type())
	if !ok || external == attrs.Type {
		return nil
	}

	return schemaMismatch(path, tmpl.Type(), nil,
		"record of type %q does not match template type %q", attrs.Type, external)
}
