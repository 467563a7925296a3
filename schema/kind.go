package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the declared scalar kind of a field. It is only consulted when
// the mapper runs with strict kinds; KindAny accepts every value.
type Kind int

const (
	KindAny      Kind = iota // any
	KindString               // string
	KindBool                 // bool
	KindNumber               // number
	KindDate                 // date
	KindDateTime             // datetime
)

// Layouts accepted for string-encoded dates and datetimes.
const (
	DateLayout = "2006-01-02"
	// DateTimeLayout is the offset form CRM APIs return ("2024-05-01T10:00:00.000+0000").
	DateTimeLayout = "2006-01-02T15:04:05.000-0700"
)

// ParseKind parses the textual form used in schema files.
// The empty string is KindAny.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindAny, nil
	}

	for k := KindAny; k <= KindDateTime; k++ {
		if k.String() == s {
			return k, nil
		}
	}

	return KindAny, fmt.Errorf("unknown field kind %q", s)
}

// Accepts reports whether v is a valid value for the kind.
// nil (an absent value) is accepted by every kind.
func (k Kind) Accepts(v any) bool {
	if v == nil || k == KindAny {
		return true
	}

	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		return isNumber(v)
	case KindDate:
		return isTime(v, DateLayout)
	case KindDateTime:
		return isTime(v, time.RFC3339Nano, DateTimeLayout)
	default:
		return false
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

func isTime(v any, layouts ...string) bool {
	switch tv := v.(type) {
	case time.Time:
		return true
	case string:
		for _, layout := range layouts {
			if _, err := time.Parse(layout, tv); err == nil {
				return true
			}
		}
	}

	return false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
