package psl

import (
	"fmt"
	"strings"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a problem found while parsing, located by its span.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Span     Span     `json:"span"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%d..%d]: %s", d.Severity, d.Span.Start, d.Span.End, d.Message)
}

type Diagnostics []Diagnostic

func (d *Diagnostics) pushError(msg string, span Span) {
	*d = append(*d, Diagnostic{Severity: SeverityError, Message: msg, Span: span})
}

func (d *Diagnostics) pushWarning(msg string, span Span) {
	*d = append(*d, Diagnostic{Severity: SeverityWarning, Message: msg, Span: span})
}

func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (d Diagnostics) Errors() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity == SeverityError {
			out = append(out, diag)
		}
	}
	return out
}

func (d Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity == SeverityWarning {
			out = append(out, diag)
		}
	}
	return out
}

func (d Diagnostics) String() string {
	lines := make([]string, 0, len(d))
	for _, diag := range d {
		lines = append(lines, diag.String())
	}
	return strings.Join(lines, "\n")
}

// LineColumn converts a byte offset into a 1-based line and column.
func LineColumn(src string, offset int) (int, int) {
	if offset > len(src) {
		offset = len(src)
	}
	line := 1 + strings.Count(src[:offset], "\n")
	col := offset - strings.LastIndex(src[:offset], "\n")
	return line, col
}
