// Package mapper is the mapping engine between domain objects and
// external records.
//
// Three operations read the schema registry and never mutate their inputs:
//
//   - Flatten: object -> flat record. Every set field with an alias is
//     copied verbatim under the alias; "Id" is always copied as "Id".
//     Relationship roles are not interpreted.
//   - TreeBuild: object -> composite tree {records: [node]} for batch
//     creation. Each node carries attributes {type, referenceId}; child
//     sequences nest as {records: [...]}; parent references are never
//     embedded.
//   - Hydrate: record + template -> object. Parent sub-records and child
//     collections hydrate recursively against nested templates.
//
// Absent values, unaliased fields and empty relationships are omitted,
// never emitted as null. The only errors are schema mismatches between the
// metadata and the data (ErrSchemaMismatch) and object graphs that contain
// themselves (ErrCyclicMetadata).
//
// # Reference ids
//
// By default a node's referenceId is <ExternalType>Ref<i>, where i is the
// node's index in its parent's child sequence (0 for the root). Sibling
// collections of the same type under different aliases therefore reuse
// ids. WithReferenceIDs(RefPerType) numbers nodes per external type over
// the whole tree instead, which makes ids unique.
//
// # Hydrating empty children
//
// A child collection that is absent or has no records leaves the field
// unset; Hydrate never produces an empty sequence.
package mapper
