// Package models defines the data structures for schema check results.
package models

// NotAvailable is shown for summary attributes the schema does not declare.
const NotAvailable = "N/A"

// EventTypeCheckCompleted is the event type of CheckCompleted.
const EventTypeCheckCompleted = "schema.check.completed"

// SchemaSummary is the top-level metadata of a valid schema document.
type SchemaSummary struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	SchemaURI     string   `json:"schemaUri"`
	HasProperties bool     `json:"hasProperties"`
	PropertyCount int      `json:"propertyCount,omitempty"`
	Required      []string `json:"required,omitempty"`
}

// CheckCompleted is published once per check, whatever the outcome.
type CheckCompleted struct {
	EventType  string         `json:"eventType"`
	CheckID    string         `json:"checkId"`
	Principal  string         `json:"principal,omitempty"`
	Path       string         `json:"path"`
	Valid      bool           `json:"valid"`
	Outcome    string         `json:"outcome"`
	Message    string         `json:"message,omitempty"`
	Summary    *SchemaSummary `json:"summary,omitempty"`
	DurationMs int64          `json:"durationMs"`
	Timestamp  int64          `json:"timestamp"`
}
