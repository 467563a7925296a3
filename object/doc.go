// Package object holds domain objects in the form the mapper works on: a
// domain type name plus field values in insertion order.
//
// A field value is a scalar, a *Object for a parent reference, or a
// []*Object for a child sequence. A field that was never set, or was set to
// nil, is absent; absent fields are never emitted by the mapper.
//
// Typed domain structs convert to and from *Object (see package crm), or
// objects are decoded from generic JSON with Decode.
package object
