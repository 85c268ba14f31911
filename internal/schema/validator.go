// Package schema checks JSON documents against the draft-07 meta-schema.
package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Draft07MetaSchema is the meta-schema every checked document is validated
// against, regardless of the $schema it declares.
const Draft07MetaSchema = "http://json-schema.org/draft-07/schema"

// Validator validates schema documents against the draft-07 meta-schema.
// It is safe for concurrent use once built.
type Validator struct {
	meta *jsonschema.Schema
}

// New compiles the draft-07 meta-schema. Formats are asserted, so a pattern
// that is not a valid regular expression makes the document invalid. URI
// formats are accepted as written.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft7)
	c.AssertFormat()
	c.UseRegexpEngine(compileECMARegex)
	for _, name := range []string{"uri", "uri-reference"} {
		c.RegisterFormat(&jsonschema.Format{Name: name, Validate: acceptFormat})
	}

	meta, err := c.Compile(Draft07MetaSchema)
	if err != nil {
		return nil, fmt.Errorf("compile meta-schema %s: %w", Draft07MetaSchema, err)
	}
	return &Validator{meta: meta}, nil
}

// Validate reports whether doc is itself a valid draft-07 schema. doc must be
// a value produced by Decode. References inside doc are not resolved.
// The returned error is a *jsonschema.ValidationError.
func (v *Validator) Validate(doc any) error {
	return v.meta.Validate(doc)
}

// ecmaRegexp adapts regexp2 to the validator's regexp engine.
type ecmaRegexp struct {
	*regexp2.Regexp
}

func (r ecmaRegexp) MatchString(s string) bool {
	ok, err := r.Regexp.MatchString(s)
	return ok && err == nil
}

// JSON Schema patterns follow ECMA-262, which RE2 does not cover
// (lookarounds, backreferences).
func compileECMARegex(s string) (jsonschema.Regexp, error) {
	re, err := regexp2.Compile(s, regexp2.ECMAScript)
	if err != nil {
		return nil, err
	}
	return ecmaRegexp{re}, nil
}

func acceptFormat(any) error {
	return nil
}
