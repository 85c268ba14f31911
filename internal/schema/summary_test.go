package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"json-schema-checker/internal/models"
)

func summarize(t *testing.T, input string) models.SchemaSummary {
	t.Helper()
	doc, err := Decode([]byte(input))
	require.NoError(t, err)
	return Summarize(doc)
}

func TestSummarize_Person(t *testing.T) {
	s := summarize(t, `{"title":"Person","type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`)

	assert.Equal(t, "Person", s.Title)
	assert.Equal(t, models.NotAvailable, s.Description)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, models.NotAvailable, s.SchemaURI)
	assert.True(t, s.HasProperties)
	assert.Equal(t, 1, s.PropertyCount)
	assert.Equal(t, []string{"name"}, s.Required)
}

func TestSummarize_AllFields(t *testing.T) {
	s := summarize(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "Order",
		"description": "A purchase order",
		"type": ["object", "null"],
		"properties": {"id": {}, "lines": {}, "total": {}}
	}`)

	assert.Equal(t, "Order", s.Title)
	assert.Equal(t, "A purchase order", s.Description)
	assert.Equal(t, `["object","null"]`, s.Type)
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", s.SchemaURI)
	assert.Equal(t, 3, s.PropertyCount)
	assert.NotNil(t, s.Required)
	assert.Empty(t, s.Required)
}

func TestSummarize_NoProperties(t *testing.T) {
	s := summarize(t, `{"type":"string","required":["ignored"]}`)

	assert.False(t, s.HasProperties)
	assert.Zero(t, s.PropertyCount)
	assert.Nil(t, s.Required)
}

func TestSummarize_EmptyProperties(t *testing.T) {
	s := summarize(t, `{"properties":{}}`)

	assert.True(t, s.HasProperties)
	assert.Zero(t, s.PropertyCount)
}

func TestSummarize_BooleanSchemas(t *testing.T) {
	for _, input := range []string{"true", "false"} {
		t.Run(input, func(t *testing.T) {
			s := summarize(t, input)
			assert.Equal(t, models.SchemaSummary{
				Title:       models.NotAvailable,
				Description: models.NotAvailable,
				Type:        models.NotAvailable,
				SchemaURI:   models.NotAvailable,
			}, s)
		})
	}
}
