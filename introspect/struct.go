package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/ggoodman/smartinvoker-go/argument"
	"github.com/ggoodman/smartinvoker-go/nativetype"
)

// TagName is the struct tag holding parameter documentation.
const TagName = "invoke"

var byteSliceType = reflect.TypeOf([]byte(nil))

// Struct reflects the parameter struct v (a struct value, a pointer to one or
// a reflect.Type) into structural metadata and documentation for method.
func Struct(method string, v any) ([]argument.Param, argument.Annotations, error) {
	if v == nil {
		return nil, nil, errors.New("introspect: nil parameter struct")
	}
	rt, ok := v.(reflect.Type)
	if !ok {
		rt = reflect.TypeOf(v)
	}
	for rt.Kind() == reflect.Ptr {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("introspect: expected struct, got %s", rt)
	}

	var params []argument.Param
	docs := argument.Annotations{}
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		jsonTag := f.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := f.Name
		if jsonTag != "" {
			if n := strings.Split(jsonTag, ",")[0]; n != "" {
				name = n
			}
		}
		if _, dup := docs[name]; dup {
			return nil, nil, fmt.Errorf("introspect: %s: duplicate parameter name %q", rt, name)
		}

		p := argument.Param{Method: method, Name: name, Position: len(params)}
		ft := f.Type
		if ft.Kind() == reflect.Ptr {
			p.Optional = true
			ft = ft.Elem()
		}
		rawType := describe(ft, &p)

		tag := parseTag(f.Tag.Get(TagName))
		if tag.typ != "" {
			rawType = tag.typ
		}
		if tag.optional {
			p.Optional = true
		}
		if tag.hasDefault {
			p.Optional = true
			p.DefaultAvailable = true
			def, err := parseDefault(ft, name, rawType, tag.def)
			if err != nil {
				return nil, nil, fmt.Errorf("introspect: %s.%s: default %q: %w", rt, f.Name, tag.def, err)
			}
			p.Default = def
		}

		params = append(params, p)
		docs[name] = argument.Annotation{
			Description: tag.desc,
			Type:        rawType,
			Rules:       tag.rules,
		}
	}
	return params, docs, nil
}

// describe fills the structural fields of p for type t and returns the
// documented type implied by t.
func describe(t reflect.Type, p *argument.Param) string {
	if t == byteSliceType {
		return nativetype.String
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		// Element types that can be documented become "T[]"; only untyped
		// elements fall back to a structural array.
		elem := t.Elem()
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		var inner argument.Param
		et := describe(elem, &inner)
		if et == "mixed" || strings.HasSuffix(et, "[]") {
			p.IsArray = true
		}
		return et + "[]"
	case reflect.Struct:
		p.Class = argument.ClassOf(t)
		return p.Class
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "mixed"
		}
		p.Class = argument.ClassOf(t)
		return p.Class
	case reflect.Map:
		if t.Key().Kind() == reflect.String {
			return argument.MapClass
		}
		return "mixed"
	case reflect.Func:
		return nativetype.Callable
	case reflect.Chan, reflect.UnsafePointer:
		return nativetype.Resource
	case reflect.Bool:
		return nativetype.Bool
	case reflect.String:
		return nativetype.String
	case reflect.Float32, reflect.Float64:
		return nativetype.Float
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return nativetype.Int
	}
	return "mixed"
}

type fieldTag struct {
	typ        string
	desc       string
	def        string
	hasDefault bool
	optional   bool
	rules      []argument.Rule
}

func parseTag(tag string) fieldTag {
	var out fieldTag
	if tag == "" {
		return out
	}
	for _, p := range strings.Split(tag, ",") {
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		key := kv[0]
		val := ""
		if len(kv) == 2 {
			val = kv[1]
		}
		switch key {
		case "type":
			out.typ = val
		case "desc", "description":
			out.desc = val
		case "default":
			out.def = val
			out.hasDefault = true
		case "optional":
			out.optional = true
		case "rule":
			if r, ok := parseRule(val); ok {
				out.rules = append(out.rules, r)
			}
		default:
			// ignore unknown tokens for forward compat
		}
	}
	return out
}

func parseRule(s string) (argument.Rule, bool) {
	parts := strings.Split(s, ":")
	if parts[0] == "" {
		return argument.Rule{}, false
	}
	r := argument.Rule{Name: parts[0]}
	for _, a := range parts[1:] {
		r.Args = append(r.Args, ParseLiteral(a))
	}
	return r, true
}

// ParseLiteral reads s as an int, float, bool or null literal, falling back
// to a string.
func ParseLiteral(s string) argument.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return argument.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, "0123456789") {
		return argument.Float(f)
	}
	switch s {
	case "true":
		return argument.Bool(true)
	case "false":
		return argument.Bool(false)
	case "null":
		return argument.Null()
	}
	return argument.String(s)
}

// parseDefault reads a default literal and converts it to the scalar type
// documented for the field, so a float field declared with default=1 yields
// 1.0. Null, sequence and object defaults are kept as parsed.
func parseDefault(t reflect.Type, name, rawType, s string) (argument.Value, error) {
	if t.Kind() == reflect.String {
		return argument.String(s), nil
	}
	v := ParseLiteral(s)
	d := argument.Import(argument.Param{Name: name}, argument.Annotations{name: {Type: rawType}})
	if v.IsNull() || !d.Typed() || d.Multiple() || !nativetype.IsScalar(d.Type()) {
		return v, nil
	}
	return d.ToType(v, nil)
}
