package mapper

import (
	"record-mapper/object"
	"record-mapper/record"
)

// Flatten maps obj to a flat external record. Every set field with an
// alias is copied verbatim under the alias, and the identity field under
// "Id". Relationship roles are not interpreted: a set parent or child field
// is copied as its value like any other. A nil object yields an empty record.
func (m *Mapper) Flatten(obj *object.Object) *record.Record {
	out := record.New()
	if obj == nil {
		return out
	}

	fields := m.registry.Fields(obj.Type())
	m.traceUndeclared(obj, fields)

	for _, f := range fields {
		v, ok := obj.Get(f.Name)
		if !ok {
			continue
		}

		switch {
		case f.IsIdentity():
			out.Set(record.IDKey, v)
		case f.Alias == "":
			m.skipUnmapped(obj.Type(), f.Name)
		default:
			out.Set(f.Alias, v)
		}
	}

	return out
}
