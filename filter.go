package relinfo

import "strings"

// ShapeFunc derives the lookup key (and default output) from the raw
// input strings.
type ShapeFunc func(args ...string) string

// ValidateFunc reports whether the raw input strings are acceptable.
type ValidateFunc func(args ...string) bool

// NameFilter is a single reusable naming rule: validate the inputs,
// derive a key with the shape function, then rewrite the key through
// the rules table. A key without a table entry passes through
// unchanged, so the table only has to list the exceptions.
type NameFilter struct {
	// Field names the input this filter consumes, for error reporting.
	Field string
	// Check names the validation that guards this filter, for error reporting.
	Check string
	// Shape derives the lookup key. Nil means identity on a single argument.
	Shape ShapeFunc
	// Rules overrides the shaped key for listed values.
	Rules map[string]string
	// Validate guards the inputs. Nil means always valid; use for filters
	// that only post-process another filter's already-validated output.
	Validate ValidateFunc
}

// Apply runs the filter over the raw inputs. It returns a
// *ValidationError when the validator rejects them.
func (f *NameFilter) Apply(args ...string) (string, error) {
	if f.Validate != nil && !f.Validate(args...) {
		return "", &ValidationError{Field: f.Field, Value: strings.Join(args, "-"), Check: f.Check}
	}

	key := args[0]
	if f.Shape != nil {
		key = f.Shape(args...)
	}
	if out, ok := f.Rules[key]; ok {
		return out, nil
	}
	return key, nil
}
