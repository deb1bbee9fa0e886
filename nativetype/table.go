// Package nativetype holds the fixed table of native value types recognised
// when reconciling parameter declarations. Each type is classified as scalar
// or complex and carries a priority used by callers ranking candidate types.
package nativetype

import "sort"

// Class is the coarse classification of a native type.
type Class int

const (
	Scalar  Class = 1
	Complex Class = 2
)

func (c Class) String() string {
	switch c {
	case Scalar:
		return "scalar"
	case Complex:
		return "complex"
	default:
		return "unknown"
	}
}

// Native type names.
const (
	Int      = "int"
	Bool     = "bool"
	Float    = "float"
	String   = "string"
	Array    = "array"
	Null     = "null"
	Resource = "resource"
	Callable = "callable"
)

// Object is the declared type of class-typed parameters. It is not part of
// the native table.
const Object = "object"

// Type describes one native type.
type Type struct {
	Name     string
	Class    Class
	Priority int
}

// table is populated at program start and never mutated afterwards.
var table = map[string]Type{
	Int:      {Name: Int, Class: Scalar, Priority: 9},
	Bool:     {Name: Bool, Class: Scalar, Priority: 7},
	Float:    {Name: Float, Class: Scalar, Priority: 8},
	String:   {Name: String, Class: Scalar, Priority: 10},
	Array:    {Name: Array, Class: Complex, Priority: 6},
	Null:     {Name: Null, Class: Complex, Priority: 1},
	Resource: {Name: Resource, Class: Complex, Priority: 5},
	Callable: {Name: Callable, Class: Complex, Priority: 10},
}

// Lookup returns the native type registered under name.
func Lookup(name string) (Type, bool) {
	t, ok := table[name]
	return t, ok
}

// IsNative reports whether name is a native type.
func IsNative(name string) bool {
	_, ok := table[name]
	return ok
}

// IsScalar reports whether name is a native scalar type.
func IsScalar(name string) bool {
	t, ok := table[name]
	return ok && t.Class == Scalar
}

// Names returns every native type name in lexical order.
func Names() []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
