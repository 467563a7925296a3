// Package record is the external representation: flat key-value records,
// nested parent records, `{records: [...]}` child collections and the
// `attributes` block of composite-tree nodes.
//
// Records keep keys in insertion order, so JSON output follows the order in
// which the mapper visited schema fields.
//
// Values read from JSON (Parse, UnmarshalJSON) are normalized: objects
// become *Record with keys sorted, integers are int64, other numbers float64.
package record
