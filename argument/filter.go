package argument

import (
	"fmt"

	"github.com/ggoodman/smartinvoker-go/nativetype"
)

// RuleFunc implements one named validation rule. It reports false to reject
// value; a non-nil error is treated as a failure of the rule itself.
type RuleFunc func(value Value, args []Value) (bool, error)

// Validator resolves rule names to their implementations.
type Validator interface {
	Rule(name string) (RuleFunc, bool)
}

// Filter checks multiplicity, coerces v to the declared type and, when
// validator is non-nil, runs the declared rules in order. The first failure
// is returned as a *TypeCastingError or *ValidationError.
func (d *Descriptor) Filter(v Value, validator Validator) (Value, error) {
	if d.multiple && v.kind != KindArray {
		return Value{}, castErr(d, v)
	}
	v = v.clone()

	if d.typ != "" {
		if v.kind.String() == d.typ {
			if d.typ == nativetype.Object {
				if err := d.checkInstance(v); err != nil {
					return Value{}, err
				}
			}
		} else if d.multiple {
			for i, e := range v.list {
				c, err := d.ToType(e, nil)
				if err != nil {
					return Value{}, err
				}
				v.list[i] = c
			}
		} else {
			c, err := d.ToType(v, nil)
			if err != nil {
				return Value{}, err
			}
			v = c
		}
	}

	if len(d.rules) == 0 || validator == nil {
		return v, nil
	}
	for _, r := range d.rules {
		if d.multiple {
			for _, e := range v.list {
				if err := d.apply(validator, r, e); err != nil {
					return Value{}, err
				}
			}
			continue
		}
		if err := d.apply(validator, r, v); err != nil {
			return Value{}, err
		}
	}
	return v, nil
}

// checkInstance handles a single object value. Object lists never reach it:
// their kind is array, so each element is checked by ToType instead.
func (d *Descriptor) checkInstance(v Value) error {
	if !v.obj.InstanceOf(d.class) {
		return castErr(d, v)
	}
	return nil
}

func (d *Descriptor) apply(validator Validator, r Rule, v Value) (err error) {
	fn, ok := validator.Rule(r.Name)
	if !ok || fn == nil {
		return &ValidationError{Param: d, Rule: r.Name, Cause: ErrUnknownRule}
	}
	defer func() {
		if p := recover(); p != nil {
			err = &ValidationError{Param: d, Rule: r.Name, Cause: fmt.Errorf("rule panicked: %v", p)}
		}
	}()
	passed, ferr := fn(v, r.Args)
	if ferr != nil {
		return &ValidationError{Param: d, Rule: r.Name, Cause: ferr}
	}
	if !passed {
		return &ValidationError{Param: d, Rule: r.Name}
	}
	return nil
}
