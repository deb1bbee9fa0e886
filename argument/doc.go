// Package argument reconciles the declared shape of a formal parameter and
// enforces it on every call.
//
// A Descriptor is built once per parameter by Import from two sources:
//  1. Structural metadata (Param): name, position, optionality, default,
//     declared array-ness and declared class. When present, structural typing
//     wins.
//  2. Documentation (Annotation): description, a raw type string such as
//     "int[]", "string|null" or "\Foo\Bar", and an ordered rule list.
//     Documentation is advisory; anything it cannot express leaves the
//     parameter untyped.
//
// Descriptors are immutable and safe for concurrent use. Per call, Filter
// checks multiplicity, coerces the value with ToType and runs the rules
// against a caller supplied Validator:
//
//	d := argument.Import(argument.Param{Name: "ids", Position: 0},
//	    argument.Annotations{"ids": {Type: "int[]", Rules: []argument.Rule{{Name: "min", Args: []argument.Value{argument.Int(1)}}}}})
//	v, err := d.Filter(argument.FromAny([]any{1, "2", 3.0}), validator)
//	// v == [1, 2, 3]
//
// Failures are *TypeCastingError or *ValidationError; both carry the
// offending Descriptor and match ErrTypeCasting / ErrValidation with
// errors.Is.
package argument
