package model

import "fmt"

// DiagnosticCode identifies structural problems found in the input document.
// Diagnostics never abort an analysis run.
type DiagnosticCode string

const (
	DiagOrphanVisual  DiagnosticCode = "ORPHAN_VISUAL"
	DiagDuplicateID   DiagnosticCode = "DUPLICATE_ID"
	DiagMissingField  DiagnosticCode = "MISSING_REQUIRED"
	DiagCheckPanicked DiagnosticCode = "INTERNAL_ERROR"

	// DiagPageMembership flags a page listing a visual that declares another
	// page.
	DiagPageMembership DiagnosticCode = "PAGE_MEMBERSHIP"
)

// Diagnostic records a structural condition together with contextual data.
type Diagnostic struct {
	Code    DiagnosticCode         `yaml:"code" json:"code"`
	Message string                 `yaml:"message" json:"message"`
	Context map[string]interface{} `yaml:"context,omitempty" json:"context,omitempty"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}

// NewDiagnostic constructs a Diagnostic.
func NewDiagnostic(code DiagnosticCode, message string, context map[string]interface{}) Diagnostic {
	return Diagnostic{Code: code, Message: message, Context: context}
}

// WithContext returns a copy of the diagnostic with merged contextual data.
func (d Diagnostic) WithContext(ctx map[string]interface{}) Diagnostic {
	merged := make(map[string]interface{}, len(d.Context)+len(ctx))
	for k, v := range d.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	d.Context = merged
	return d
}
