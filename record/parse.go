package record

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Parse decodes a JSON document into normalized values.
func Parse(data []byte) (any, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return normalize(v), nil
}

// ParseRecord decodes a JSON object into a record.
func ParseRecord(data []byte) (*Record, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}

	rec, ok := v.(*Record)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}

	return rec, nil
}

// Select evaluates a JSONPath expression (e.g. "$.records[*]") against doc
// and returns the matching objects as records. Non-object matches are an
// error.
func Select(doc any, expr string) ([]*Record, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}

	results := x.Get(Plain(doc))

	out := make([]*Record, 0, len(results))
	for i, r := range results {
		rec, ok := AsRecord(r)
		if !ok {
			return nil, fmt.Errorf("jsonpath '%s': match %d is %T, not an object", expr, i, r)
		}

		out = append(out, rec)
	}

	return out, nil
}
