package object

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrCyclicGraph is returned when encoding an object graph in which an
// object contains itself.
var ErrCyclicGraph = errors.New("object graph is cyclic")

// Object is one domain object.
type Object struct {
	typeName string
	values   *orderedmap.OrderedMap[string, any]
}

// New creates an empty object of the given domain type.
func New(typeName string) *Object {
	return &Object{typeName: typeName, values: orderedmap.New[string, any]()}
}

// Type returns the domain type name.
func (o *Object) Type() string {
	return o.typeName
}

// Set stores v under field and returns o. An absent value (see IsAbsent)
// unsets the field.
func (o *Object) Set(field string, v any) *Object {
	o.init()

	if IsAbsent(v) {
		o.values.Delete(field)
		return o
	}

	o.values.Set(field, v)

	return o
}

// Get returns the value of a set field.
func (o *Object) Get(field string) (any, bool) {
	if o == nil || o.values == nil {
		return nil, false
	}

	return o.values.Get(field)
}

// Has reports whether field is set.
func (o *Object) Has(field string) bool {
	_, ok := o.Get(field)
	return ok
}

// Unset removes field.
func (o *Object) Unset(field string) {
	o.init()
	o.values.Delete(field)
}

// Fields returns the set fields in insertion order.
func (o *Object) Fields() []string {
	o.init()

	out := make([]string, 0, o.values.Len())
	for pair := o.values.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// Parent returns the object held by a parent field.
func (o *Object) Parent(field string) (*Object, bool) {
	v, ok := o.Get(field)
	if !ok {
		return nil, false
	}

	p, ok := v.(*Object)

	return p, ok && p != nil
}

// Children returns the sequence held by a child field.
func (o *Object) Children(field string) ([]*Object, bool) {
	v, ok := o.Get(field)
	if !ok {
		return nil, false
	}

	c, ok := v.([]*Object)

	return c, ok
}

// AddChild appends c to the child sequence under field.
func (o *Object) AddChild(field string, c *Object) *Object {
	o.init()

	children, _ := o.Children(field)
	o.values.Set(field, append(children, c))

	return o
}

// MarshalJSON implements json.Marshaler; fields keep insertion order. An
// object reachable from itself through its values is an error.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.writeJSON(&buf, map[*Object]bool{}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeJSON encodes o, tracking the objects on the current path. Nested
// objects are written here rather than through json.Marshal so the path
// survives across levels.
func (o *Object) writeJSON(buf *bytes.Buffer, onPath map[*Object]bool) error {
	if o == nil {
		buf.WriteString("null")
		return nil
	}

	if onPath[o] {
		return fmt.Errorf("%w: %s", ErrCyclicGraph, o.typeName)
	}

	onPath[o] = true
	defer delete(onPath, o)

	o.init()
	buf.WriteByte('{')

	for pair := o.values.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Prev() != nil {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(pair.Key)
		if err != nil {
			return err
		}

		buf.Write(key)
		buf.WriteByte(':')

		if err := writeValue(buf, pair.Value, onPath); err != nil {
			return fmt.Errorf("%s.%s: %w", o.typeName, pair.Key, err)
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeValue(buf *bytes.Buffer, v any, onPath map[*Object]bool) error {
	switch tv := v.(type) {
	case *Object:
		return tv.writeJSON(buf, onPath)
	case []*Object:
		buf.WriteByte('[')

		for i, child := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := child.writeJSON(buf, onPath); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}

		buf.WriteByte(']')

		return nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}

		buf.Write(data)

		return nil
	}
}

// String returns the compact JSON form.
func (o *Object) String() string {
	data, err := json.Marshal(o)
	if err != nil {
		return "<invalid object: " + err.Error() + ">"
	}

	return o.typeName + string(data)
}

func (o *Object) init() {
	if o.values == nil {
		o.values = orderedmap.New[string, any]()
	}
}

// IsAbsent reports whether v counts as an unset value: nil, or a nil
// pointer, map, slice, interface, func or channel.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
