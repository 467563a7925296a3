package mapper

import (
	"errors"
	"fmt"

	"record-mapper/internal/common"
)

// ErrorCode categorizes mapping errors.
type ErrorCode string

const (
	// CodeSchemaMismatch indicates metadata and data disagree: a missing
	// type alias, a relationship holding the wrong shape, or a nested
	// record of another type than its template.
	CodeSchemaMismatch ErrorCode = "SCHEMA_MISMATCH"

	// CodeCyclicMetadata indicates an object reachable from itself
	// through child fields.
	CodeCyclicMetadata ErrorCode = "CYCLIC_METADATA"
)

// Sentinels for errors.Is.
var (
	ErrSchemaMismatch = errors.New("schema mismatch")
	ErrCyclicMetadata = errors.New("cyclic metadata")
)

// Error is a fatal mapping error.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Type is the domain type being mapped when the error occurred.
	Type string

	// Path locates the failing value, e.g. "Account.Users[1].Account".
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (type=%s, path=%s)", e.Type, e.Path)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is matches the sentinel of the error's code.
func (e *Error) Is(target error) bool {
	switch e.Code {
	case CodeSchemaMismatch:
		return target == ErrSchemaMismatch
	case CodeCyclicMetadata:
		return target == ErrCyclicMetadata
	default:
		return false
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func schemaMismatch(path common.Path, typeName string, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    CodeSchemaMismatch,
		Message: fmt.Sprintf(format, args...),
		Type:    typeName,
		Path:    path.String(),
		Err:     cause,
	}
}

func cyclicMetadata(path common.Path, typeName string) *Error {
	return &Error{
		Code:    CodeCyclicMetadata,
		Message: "object is reachable from itself through child fields",
		Type:    typeName,
		Path:    path.String(),
	}
}
