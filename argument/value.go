package argument

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/ggoodman/smartinvoker-go/nativetype"
)

// Kind is the runtime type of a Value. Kind names match the native type
// table so a runtime kind can be compared directly with a declared type.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindResource
	KindCallable
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return nativetype.Null
	case KindBool:
		return nativetype.Bool
	case KindInt:
		return nativetype.Int
	case KindFloat:
		return nativetype.Float
	case KindString:
		return nativetype.String
	case KindArray:
		return nativetype.Array
	case KindObject:
		return nativetype.Object
	case KindResource:
		return nativetype.Resource
	case KindCallable:
		return nativetype.Callable
	default:
		return "unknown"
	}
}

// structural reports whether values of this kind are never implicitly
// converted to scalars.
func (k Kind) structural() bool {
	switch k {
	case KindArray, KindObject, KindResource, KindCallable:
		return true
	}
	return false
}

// Value is a loosely typed argument value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	obj  Object
	ref  any // callable or resource handle
}

func Null() Value            { return Value{} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }
func Int(i int64) Value      { return Value{kind: KindInt, i: i} }
func Float(f float64) Value  { return Value{kind: KindFloat, f: f} }
func String(s string) Value  { return Value{kind: KindString, s: s} }
func List(vs ...Value) Value { return Value{kind: KindArray, list: vs} }
func ObjectValue(o Object) Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

// Callable wraps an invocable handle, typically a Go func value.
func Callable(fn any) Value { return Value{kind: KindCallable, ref: fn} }

// Resource wraps an opaque handle such as an open file or connection.
func Resource(r any) Value { return Value{kind: KindResource, ref: r} }

func (v Value) Kind() Kind        { return v.kind }
func (v Value) IsNull() bool      { return v.kind == KindNull }
func (v Value) Bool() bool        { return v.b }
func (v Value) Int() int64        { return v.i }
func (v Value) Float() float64    { return v.f }
func (v Value) Str() string       { return v.s }
func (v Value) Elems() []Value    { return v.list }
func (v Value) Object() Object    { return v.obj }
func (v Value) Handle() any       { return v.ref }
func (v Value) Len() int          { return len(v.list) }
func (v Value) Index(i int) Value { return v.list[i] }

// Interface converts v back to a plain Go value. Lists become []any, objects
// yield their Data when they are basic objects and the Object otherwise.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		switch o := v.obj.(type) {
		case *BasicObject:
			return o.Data
		case hostObject:
			return o.v
		}
		return v.obj
	case KindResource, KindCallable:
		return v.ref
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		return "object(" + v.obj.Class() + ")"
	case KindResource, KindCallable:
		return v.kind.String()
	}
	return fmt.Sprint(v.Interface())
}

// clone returns v with its list backing array copied one level deep.
func (v Value) clone() Value {
	if v.kind != KindArray {
		return v
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	v.list = cp
	return v
}

// Object is a class instance carried by an object Value.
type Object interface {
	// Class returns the fully qualified class name.
	Class() string
	// InstanceOf reports whether the object is of, extends or implements class.
	InstanceOf(class string) bool
}

// BasicObject is a plain Object with an explicit class hierarchy.
type BasicObject struct {
	Name    string
	Parents []string
	Data    any
}

// NewObject builds a BasicObject of class with optional parent classes or
// interfaces.
func NewObject(class string, data any, parents ...string) *BasicObject {
	return &BasicObject{Name: normalizeClass(class), Parents: parents, Data: data}
}

func (o *BasicObject) Class() string { return o.Name }

func (o *BasicObject) InstanceOf(class string) bool {
	class = normalizeClass(class)
	if class == o.Name {
		return true
	}
	for _, p := range o.Parents {
		if normalizeClass(p) == class {
			return true
		}
	}
	return false
}

// MapClass is the class of objects decoded from untyped key/value maps.
const MapClass = "map"

// hostObject adapts an arbitrary Go value to Object using its Go type.
type hostObject struct {
	v any
	t reflect.Type
}

func (h hostObject) Class() string { return ClassOf(h.t) }

func (h hostObject) InstanceOf(class string) bool {
	class = normalizeClass(class)
	if class == h.Class() {
		return true
	}
	if rt, ok := classTypes.Load(class); ok {
		t := rt.(reflect.Type)
		if t.Kind() == reflect.Interface {
			return h.t.Implements(t)
		}
		return h.t == t || (h.t.Kind() == reflect.Ptr && h.t.Elem() == t)
	}
	return false
}

var classTypes sync.Map // class name -> reflect.Type

// ClassOf returns the class name of a Go type: its package-qualified name,
// with pointers dereferenced. The type is remembered so that values can later
// be matched against interface classes by name.
func ClassOf(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if pkg := t.PkgPath(); pkg != "" {
		name = pkg + "." + name
	}
	classTypes.LoadOrStore(name, t)
	return name
}

func normalizeClass(class string) string {
	return strings.TrimLeft(class, `\`)
}

// FromAny converts a Go value, typically produced by encoding/json, into a
// Value. Maps with string keys become objects of class MapClass, funcs become
// callables and any other non-primitive becomes a host object.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i)
		}
		if f, err := t.Float64(); err == nil {
			return Float(f)
		}
		return String(t.String())
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			out[i] = FromAny(e)
		}
		return List(out...)
	case map[string]any:
		return ObjectValue(NewObject(MapClass, t))
	case Object:
		return ObjectValue(t)
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return Null()
		}
		return Callable(x)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		out := make([]Value, rv.Len())
		for i := range out {
			out[i] = FromAny(rv.Index(i).Interface())
		}
		return List(out...)
	case reflect.Ptr, reflect.Interface, reflect.Map:
		if rv.IsNil() {
			return Null()
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			// Out of int range degrades to float like oversized JSON numbers.
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Chan:
		return Resource(x)
	}
	return ObjectValue(hostObject{v: x, t: rv.Type()})
}
