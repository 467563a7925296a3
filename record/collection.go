package record

import (
	"errors"
	"fmt"
)

// ErrNotCollection is returned for a value that is not shaped {records: [...]}.
var ErrNotCollection = errors.New("value is not a records collection")

// Collection wraps nodes in a {records: [...]} sub-structure.
func Collection(nodes []*Record) *Record {
	c := New()
	c.Set(RecordsKey, nodes)

	return c
}

// RecordsOf returns the records of a {records: [...]} value. Query results
// may carry extra keys (totalSize, done); they are ignored. A nil or missing
// records array yields an empty slice.
func RecordsOf(v any) ([]*Record, error) {
	c, ok := AsRecord(v)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotCollection, v)
	}

	raw, ok := c.Get(RecordsKey)
	if !ok || raw == nil {
		return nil, nil
	}

	switch items := raw.(type) {
	case []*Record:
		return items, nil
	case []map[string]any:
		out := make([]*Record, len(items))
		for i, m := range items {
			out[i] = FromMap(m)
		}

		return out, nil
	case []any:
		out := make([]*Record, len(items))
		for i, item := range items {
			rec, ok := AsRecord(item)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is %T", ErrNotCollection, i, item)
			}

			out[i] = rec
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: records is %T", ErrNotCollection, raw)
	}
}
