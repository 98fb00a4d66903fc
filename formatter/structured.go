package formatter

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/prismaviz/psl"
	"github.com/ridoystarlord/prismaviz/visualise"
)

// Document is the structured output of an extraction.
type Document struct {
	Result      []Model             `json:"result" yaml:"result"`
	Diagnostics psl.Diagnostics     `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
	Warnings    []visualise.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func NewDocument(result *visualise.Result) Document {
	return Document{
		Result:      ToWire(result.Models),
		Diagnostics: result.Diagnostics,
		Warnings:    result.Warnings,
	}
}

func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func WriteYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
