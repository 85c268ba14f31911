package schema

import (
	"errors"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestValidator_Validate(t *testing.T) {
	v := mustValidator(t)

	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"empty object", `{}`, true},
		{"true schema", `true`, true},
		{"false schema", `false`, true},
		{"person", `{"title":"Person","type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`, true},
		{"type array", `{"type":["string","null"]}`, true},
		{"unresolved ref", `{"$ref":"#/definitions/missing"}`, true},
		{"later draft declared", `{"$schema":"https://json-schema.org/draft/2020-12/schema","type":"string"}`, true},
		{"lookahead pattern", `{"type":"string","pattern":"^(?=.*\\d)\\w+$"}`, true},
		{"backreference pattern", `{"pattern":"^(a)\\1$"}`, true},
		{"lookahead pattern property", `{"patternProperties":{"^(?!x)":{}}}`, true},
		{"schema not a uri", `{"$schema":"not a uri at all"}`, true},
		{"id not a uri", `{"$id":"has spaces in it"}`, true},
		{"numeric type", `{"type": 123}`, false},
		{"unknown type name", `{"type": "text"}`, false},
		{"properties not object", `{"properties": []}`, false},
		{"required not array", `{"required": "name"}`, false},
		{"duplicate required", `{"required": ["a", "a"]}`, false},
		{"negative minLength", `{"minLength": -1}`, false},
		{"invalid items", `{"items": 5}`, false},
		{"invalid pattern", `{"pattern": "("}`, false},
		{"invalid pattern property", `{"patternProperties":{"[a-":{}}}`, false},
		{"schema not a string", `{"$schema": 7}`, false},
		{"array document", `[1, 2]`, false},
		{"string document", `"x"`, false},
		{"number document", `42`, false},
		{"null document", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.input))
			require.NoError(t, err)

			err = v.Validate(doc)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *jsonschema.ValidationError
			assert.True(t, errors.As(err, &verr), "expected *jsonschema.ValidationError, got %T", err)
		})
	}
}

func TestValidator_Deterministic(t *testing.T) {
	v := mustValidator(t)
	doc, err := Decode([]byte(`{"type": 123, "minLength": -1}`))
	require.NoError(t, err)

	first := v.Validate(doc)
	second := v.Validate(doc)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestCompileECMARegex(t *testing.T) {
	re, err := compileECMARegex(`^\d{3}-\d{4}$`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("555-1234"))
	assert.False(t, re.MatchString("5551234"))
	assert.Equal(t, `^\d{3}-\d{4}$`, re.String())

	re, err = compileECMARegex(`(?!foo)bar`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("bar"))

	_, err = compileECMARegex(`[a-`)
	assert.Error(t, err)
}
