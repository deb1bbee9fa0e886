package argument

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeCasting matches every *TypeCastingError via errors.Is.
	ErrTypeCasting = errors.New("argument: type casting failed")
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("argument: validation failed")
	// ErrUnknownRule is the cause recorded when the validator has no rule
	// registered under the requested name.
	ErrUnknownRule = errors.New("unknown validation rule")
)

// TypeCastingError reports a value whose shape or type cannot be reconciled
// with the declared type, class, multiplicity or callability of a parameter.
type TypeCastingError struct {
	Param  *Descriptor
	Actual string // runtime type of the offending value
}

func (e *TypeCastingError) Error() string {
	want := e.Param.typ
	if want == "" {
		want = "any"
	}
	if e.Param.class != "" {
		want = e.Param.class
	}
	if e.Param.multiple {
		want += "[]"
	}
	return fmt.Sprintf("argument %s: cannot cast %s to %s", e.Param, e.Actual, want)
}

func (e *TypeCastingError) Is(target error) bool { return target == ErrTypeCasting }

// ValidationError reports a rule that rejected a value, either by returning
// false or by failing. Cause holds the rule's own error, if any.
type ValidationError struct {
	Param *Descriptor
	Rule  string
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("argument %s: rule %s failed: %v", e.Param, e.Rule, e.Cause)
	}
	return fmt.Sprintf("argument %s: rule %s rejected value", e.Param, e.Rule)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func castErr(d *Descriptor, v Value) error {
	return &TypeCastingError{Param: d, Actual: v.kind.String()}
}
