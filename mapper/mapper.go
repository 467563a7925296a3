package mapper

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"record-mapper/object"
	"record-mapper/schema"
)

// ReferenceIDMode selects how composite-tree reference ids are numbered.
type ReferenceIDMode int

const (
	// RefSibling numbers a node by its index in the parent's child sequence.
	RefSibling ReferenceIDMode = iota
	// RefPerType numbers nodes per external type in depth-first order.
	RefPerType
)

// ParseReferenceIDMode parses "sibling" or "type".
func ParseReferenceIDMode(s string) (ReferenceIDMode, error) {
	switch s {
	case "", "sibling":
		return RefSibling, nil
	case "type":
		return RefPerType, nil
	default:
		return RefSibling, fmt.Errorf("unknown reference id mode %q (want sibling or type)", s)
	}
}

// Mapper maps between domain objects and external records using the
// metadata of one registry. It holds no per-call state and is safe for
// concurrent use once the registry is fully populated.
type Mapper struct {
	registry    *schema.Registry
	logger      *logrus.Logger
	refMode     ReferenceIDMode
	strictKinds bool
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithReferenceIDs sets the reference id numbering of TreeBuild.
func WithReferenceIDs(mode ReferenceIDMode) Option {
	return func(m *Mapper) {
		m.refMode = mode
	}
}

// WithStrictKinds makes Hydrate reject scalar values that the field's
// declared schema.Kind does not accept.
func WithStrictKinds() Option {
	return func(m *Mapper) {
		m.strictKinds = true
	}
}

// New creates a Mapper over reg.
func New(reg *schema.Registry, opts ...Option) *Mapper {
	m := &Mapper{
		registry: reg,
		logger:   logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Registry returns the registry the mapper reads.
func (m *Mapper) Registry() *schema.Registry {
	return m.registry
}

// skipUnmapped logs a field excluded from mapping for lack of an alias.
func (m *Mapper) skipUnmapped(typeName, field string) {
	m.logger.WithFields(logrus.Fields{
		"type":  typeName,
		"field": field,
	}).Trace("skipping unmapped field")
}

// traceUndeclared logs object fields the schema does not declare at all.
func (m *Mapper) traceUndeclared(obj *object.Object, fields []schema.FieldDef) {
	if !m.logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	declared := make(map[string]bool, len(fields))
	for _, f := range fields {
		declared[f.Name] = true
	}

	for _, name := range obj.Fields() {
		if !declared[name] {
			m.skipUnmapped(obj.Type(), name)
		}
	}
}
