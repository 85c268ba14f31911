package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// SyntaxError describes malformed JSON. Line and Column are 1-based; Char is
// the 0-based character index of the offending input.
type SyntaxError struct {
	Msg    string
	Line   int
	Column int
	Char   int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Char)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Decode parses data as a single JSON value. Numbers are kept as json.Number,
// which is the representation the meta-schema validator expects. Any JSON
// value is accepted here; shape checks belong to Validate.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, newSyntaxError(data, err, dec.InputOffset())
	}

	rest := dec.InputOffset()
	for rest < int64(len(data)) && isSpace(data[rest]) {
		rest++
	}
	if rest < int64(len(data)) {
		return nil, syntaxErrorAt(data, "extra data after top-level value", int(rest), nil)
	}
	return doc, nil
}

func newSyntaxError(data []byte, err error, inputOffset int64) *SyntaxError {
	var se *json.SyntaxError
	switch {
	case errors.As(err, &se):
		// Offset counts the offending byte itself.
		pos := int(se.Offset) - 1
		if pos < 0 {
			pos = 0
		}
		return syntaxErrorAt(data, se.Error(), pos, err)
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return syntaxErrorAt(data, "unexpected end of JSON input", len(data), err)
	default:
		return syntaxErrorAt(data, err.Error(), int(inputOffset), err)
	}
}

func syntaxErrorAt(data []byte, msg string, pos int, err error) *SyntaxError {
	if pos > len(data) {
		pos = len(data)
	}
	prefix := data[:pos]
	line := bytes.Count(prefix, []byte("\n")) + 1
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	return &SyntaxError{
		Msg:    msg,
		Line:   line,
		Column: utf8.RuneCount(prefix[lineStart:]) + 1,
		Char:   utf8.RuneCount(prefix),
		Err:    err,
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
