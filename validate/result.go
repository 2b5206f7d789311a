// Package validate checks raw mob documents against structural and range
// constraints before they enter the resolution pipeline, producing
// severity-tagged diagnostics instead of errors.
package validate

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityError marks findings callers may treat as blocking.
	SeverityError Severity = iota
	// SeverityWarning marks non-blocking, forward-compatible findings.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "WARN"
	}
	return "ERROR"
}

// Diagnostic is one finding with a dotted/bracketed locator path, e.g.
// "colliders[2].shape".
type Diagnostic struct {
	Path     string
	Message  string
	Severity Severity
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Severity, d.Path, d.Message)
}

// Result is the ordered list of diagnostics from one validation pass.
type Result struct {
	Diagnostics []Diagnostic
}

// AddError appends an error-severity diagnostic.
func (r *Result) AddError(path, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Path: path, Message: message, Severity: SeverityError})
}

// AddWarning appends a warning-severity diagnostic.
func (r *Result) AddWarning(path, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Path: path, Message: message, Severity: SeverityWarning})
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any diagnostic has warning severity.
func (r *Result) HasWarnings() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// IsEmpty reports whether validation found nothing.
func (r *Result) IsEmpty() bool {
	return len(r.Diagnostics) == 0
}

// Merge appends another result's diagnostics.
func (r *Result) Merge(other Result) {
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// Format renders all diagnostics one per line.
func (r *Result) Format() string {
	lines := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
