package types

import "fmt"

// ValidationResult aggregates the outcome of one or more business-rule checks.
// Errors are blocking: a calendar with any error is rejected. Warnings are
// surfaced to the caller but never fail a run.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// NewValidationResult returns a fresh, valid result with no findings.
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// AddError records a blocking error and marks the result invalid.
func (r *ValidationResult) AddError(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddWarning records a non-blocking warning.
func (r *ValidationResult) AddWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Merge folds other into r: validity is ANDed, error and warning lists are
// concatenated in order.
func (r *ValidationResult) Merge(other ValidationResult) {
	r.Valid = r.Valid && other.Valid
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
