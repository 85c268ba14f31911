package checker

import (
	"errors"
	"fmt"
)

// Kind classifies why a check failed. Values double as metric labels.
type Kind string

const (
	// KindFileNotFound indicates the path does not resolve to a file.
	KindFileNotFound Kind = "file_not_found"
	// KindJSONSyntax indicates the file content is not valid JSON.
	KindJSONSyntax Kind = "json_syntax"
	// KindSchemaFormat indicates the JSON is not a valid draft-07 schema.
	KindSchemaFormat Kind = "schema_format"
	// KindUnexpected covers everything else: permissions, encoding, panics.
	KindUnexpected Kind = "unexpected"
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindJSONSyntax:
		return "JSON syntax error"
	case KindSchemaFormat:
		return "JSON Schema format error"
	default:
		return "error during validation"
	}
}

var errInvalidUTF8 = errors.New("file content is not valid UTF-8 text")

// Error is returned by Inspect for every failed check.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail is the underlying parser, validator or I/O message.
func (e *Error) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// KindOf returns the kind of a check error. Errors that did not come from
// the checker are unexpected.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnexpected
}
