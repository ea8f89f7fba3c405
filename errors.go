package relinfo

import (
	"errors"
	"fmt"
)

// ValidationError reports an input that failed a closed-vocabulary or
// pattern check. It aborts the whole GenerateInfo call: no partial
// mapping is ever returned alongside one.
type ValidationError struct {
	Field string // input that failed: "version", "system", "architecture" or "os-architecture"
	Value string // the offending value
	Check string // the vocabulary or pattern that rejected it
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: not a valid %s", e.Field, e.Value, e.Check)
}

func (e *ValidationError) Is(target error) bool {
	var verr *ValidationError
	return errors.As(target, &verr)
}
