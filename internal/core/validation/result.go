package validation

// ValidationResult accumulates field-keyed validation error messages.
// A field can carry multiple messages; insertion order is preserved per
// field. Instances are request-scoped and not safe for concurrent use.
type ValidationResult struct {
	errors map[string][]string
}

// NewValidationResult creates an empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{errors: make(map[string][]string)}
}

// AddError records a validation error for a field. Each call appends the
// message without overwriting earlier ones.
func (r *ValidationResult) AddError(field, message string) {
	r.errors[field] = append(r.errors[field], message)
}

// AddMultipleErrors merges another result's field->messages mapping into
// this one. Existing entries are preserved and the incoming messages are
// appended after them.
func (r *ValidationResult) AddMultipleErrors(errors map[string][]string) {
	for field, messages := range errors {
		r.errors[field] = append(r.errors[field], messages...)
	}
}

// IsValid reports whether no field has any error.
func (r *ValidationResult) IsValid() bool {
	return len(r.errors) == 0
}

// Errors exposes the field->messages mapping for reporting.
func (r *ValidationResult) Errors() map[string][]string {
	return r.errors
}
