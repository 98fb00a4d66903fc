package visualise

import (
	"fmt"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/schema"
)

// UnparsableSchemaError is returned when the parser reported errors. The
// partial extraction result is still returned next to it.
type UnparsableSchemaError struct {
	Diagnostics psl.Diagnostics
}

func (e *UnparsableSchemaError) Error() string {
	errs := e.Diagnostics.Errors()
	if len(errs) == 1 {
		return fmt.Sprintf("schema has 1 parse error: %s", errs[0].Message)
	}
	return fmt.Sprintf("schema has %d parse errors", len(errs))
}

type WarningKind string

const (
	MalformedAttributeArguments WarningKind = "malformed_attribute_arguments"
	DuplicateModel              WarningKind = "duplicate_model"
)

// Warning reports a unit that was skipped during extraction. Warnings never
// stop extraction.
type Warning struct {
	Kind      WarningKind `json:"kind" yaml:"kind"`
	Model     string      `json:"model,omitempty" yaml:"model,omitempty"`
	Field     string      `json:"field,omitempty" yaml:"field,omitempty"`
	Attribute string      `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Message   string      `json:"message" yaml:"message"`
	Span      schema.Span `json:"span" yaml:"span"`
}

func malformed(attr psl.Attribute, msg string, span psl.Span) Warning {
	return Warning{
		Kind:      MalformedAttributeArguments,
		Attribute: attr.Name,
		Message:   msg,
		Span:      convertSpan(span),
	}
}
