package schema

import (
	"encoding/json"
	"fmt"

	"json-schema-checker/internal/models"
)

// Summarize extracts the top-level metadata of a validated schema document.
// Boolean schemas, and anything else that is not an object, yield a summary
// with every attribute unavailable.
func Summarize(doc any) models.SchemaSummary {
	summary := models.SchemaSummary{
		Title:       models.NotAvailable,
		Description: models.NotAvailable,
		Type:        models.NotAvailable,
		SchemaURI:   models.NotAvailable,
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return summary
	}

	summary.Title = attribute(obj, "title")
	summary.Description = attribute(obj, "description")
	summary.Type = attribute(obj, "type")
	summary.SchemaURI = attribute(obj, "$schema")

	props, ok := obj["properties"]
	if !ok {
		return summary
	}
	summary.HasProperties = true
	if m, ok := props.(map[string]any); ok {
		summary.PropertyCount = len(m)
	}
	summary.Required = requiredFields(obj["required"])
	return summary
}

// attribute renders a string attribute verbatim and anything else as
// compact JSON.
func attribute(obj map[string]any, key string) string {
	v, ok := obj[key]
	if !ok {
		return models.NotAvailable
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func requiredFields(v any) []string {
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
