package record

import (
	"encoding/json"
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Well-known keys of the external representation.
const (
	AttributesKey = "attributes"
	RecordsKey    = "records"
	IDKey         = "Id"
)

// Attributes is the metadata block of a record: the external type name and,
// in composite trees, the synthesized reference id.
type Attributes struct {
	Type        string `json:"type"`
	ReferenceID string `json:"referenceId,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Record is an ordered external record.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New creates an empty record.
func New() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Set stores v under key, keeping the key's original position if it exists.
func (r *Record) Set(key string, v any) {
	r.init()
	r.fields.Set(key, v)
}

// Get returns the value under key.
func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.fields == nil {
		return nil, false
	}

	return r.fields.Get(key)
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key.
func (r *Record) Delete(key string) {
	if r != nil && r.fields != nil {
		r.fields.Delete(key)
	}
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil || r.fields == nil {
		return 0
	}

	return r.fields.Len()
}

// Keys returns keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r.Len() == 0 {
		return keys
	}

	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// SetAttributes stores the attributes block.
func (r *Record) SetAttributes(a Attributes) {
	r.Set(AttributesKey, a)
}

// Attributes returns the attributes block, whether it was set with
// SetAttributes or decoded from JSON.
func (r *Record) Attributes() (Attributes, bool) {
	v, ok := r.Get(AttributesKey)
	if !ok {
		return Attributes{}, false
	}

	switch a := v.(type) {
	case Attributes:
		return a, true
	case *Attributes:
		if a == nil {
			return Attributes{}, false
		}

		return *a, true
	}

	nested, ok := AsRecord(v)
	if !ok {
		return Attributes{}, false
	}

	var out Attributes
	out.Type, _ = stringAt(nested, "type")
	out.ReferenceID, _ = stringAt(nested, "referenceId")
	out.URL, _ = stringAt(nested, "url")

	return out, true
}

// ID returns the "Id" value when it is a string.
func (r *Record) ID() (string, bool) {
	return stringAt(r, IDKey)
}

// MarshalJSON implements json.Marshaler. Keys are written in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	r.init()
	return r.fields.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Record) UnmarshalJSON(data []byte) error {
	parsed, err := ParseRecord(data)
	if err != nil {
		return err
	}

	*r = *parsed

	return nil
}

// String returns the compact JSON form.
func (r *Record) String() string {
	data, err := json.Marshal(r)
	if err != nil {
		return "<invalid record: " + err.Error() + ">"
	}

	return string(data)
}

// ToMap deep-converts the record to plain maps and slices, the shape a
// generic JSON decoder would produce.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, r.Len())
	for _, key := range r.Keys() {
		v, _ := r.Get(key)
		out[key] = Plain(v)
	}

	return out
}

// Plain deep-converts records, attributes and record slices inside v.
func Plain(v any) any {
	switch tv := v.(type) {
	case *Record:
		if tv == nil {
			return nil
		}

		return tv.ToMap()
	case Attributes:
		m := map[string]any{"type": tv.Type}
		if tv.ReferenceID != "" {
			m["referenceId"] = tv.ReferenceID
		}

		if tv.URL != "" {
			m["url"] = tv.URL
		}

		return m
	case []*Record:
		out := make([]any, len(tv))
		for i, rec := range tv {
			out[i] = Plain(rec)
		}

		return out
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = Plain(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, e := range tv {
			out[k] = Plain(e)
		}

		return out
	default:
		return v
	}
}

// FromMap builds a record from a plain map. Keys are sorted since map order
// is lost; nested maps become records.
func FromMap(m map[string]any) *Record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := New()
	for _, k := range keys {
		r.Set(k, normalize(m[k]))
	}

	return r
}

// AsRecord views v as a record. It accepts *Record and map[string]any.
func AsRecord(v any) (*Record, bool) {
	switch tv := v.(type) {
	case *Record:
		return tv, tv != nil
	case map[string]any:
		return FromMap(tv), tv != nil
	default:
		return nil, false
	}
}

func normalize(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return FromMap(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = normalize(e)
		}

		return out
	default:
		return v
	}
}

func stringAt(r *Record, key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

func (r *Record) init() {
	if r.fields == nil {
		r.fields = orderedmap.New[string, any]()
	}
}
