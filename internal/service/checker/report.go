package checker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"json-schema-checker/internal/models"
)

// writeReport renders the whole report before writing it, so a report is
// either printed completely or not at all.
func writeReport(w io.Writer, path string, summary *models.SchemaSummary, err error) error {
	var buf bytes.Buffer

	if err != nil {
		writeFailure(&buf, path, err)
	} else {
		writeSummary(&buf, path, summary)
	}

	_, werr := w.Write(buf.Bytes())
	return werr
}

func writeFailure(buf *bytes.Buffer, path string, err error) {
	var ce *Error
	if !errors.As(err, &ce) {
		fmt.Fprintf(buf, "❌ Error during validation: %v\n", err)
		return
	}

	switch ce.Kind {
	case KindFileNotFound:
		fmt.Fprintf(buf, "❌ File not found: %s\n", path)
	case KindJSONSyntax:
		fmt.Fprintf(buf, "❌ JSON syntax error: %s\n", ce.Detail())
	case KindSchemaFormat:
		fmt.Fprintf(buf, "❌ JSON Schema format error: %s\n", ce.Detail())
	default:
		fmt.Fprintf(buf, "❌ Error during validation: %s\n", ce.Detail())
	}
}

func writeSummary(buf *bytes.Buffer, path string, s *models.SchemaSummary) {
	fmt.Fprintf(buf, "✅ %s is a valid JSON Schema file\n", path)
	if s == nil {
		return
	}

	fmt.Fprintf(buf, "\n📋 Schema info:\n")
	fmt.Fprintf(buf, "   Title: %s\n", s.Title)
	fmt.Fprintf(buf, "   Description: %s\n", s.Description)
	fmt.Fprintf(buf, "   Type: %s\n", s.Type)
	fmt.Fprintf(buf, "   Schema version: %s\n", s.SchemaURI)

	if s.HasProperties {
		fmt.Fprintf(buf, "   Property count: %d\n", s.PropertyCount)
		fmt.Fprintf(buf, "   Required fields: %s\n", requiredList(s.Required))
	}
}

func requiredList(required []string) string {
	if required == nil {
		required = []string{}
	}
	b, err := json.Marshal(required)
	if err != nil {
		return "[]"
	}
	return string(b)
}
