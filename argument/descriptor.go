package argument

import (
	"strings"

	"github.com/ggoodman/smartinvoker-go/nativetype"
)

// arraySuffix marks a documented type as a sequence of the element type.
const arraySuffix = "[]"

// Param is the structural metadata of one formal parameter as reported by
// signature introspection.
type Param struct {
	Method           string
	Name             string
	Position         int
	Optional         bool
	DefaultAvailable bool
	Default          Value
	// IsArray is set when the parameter is declared as a sequence.
	IsArray bool
	// Class names the declared class or interface, if any.
	Class string
}

// Rule is one named validation check with the static arguments it is
// invoked with.
type Rule struct {
	Name string
	Args []Value
}

// Annotation is the documentation record of one parameter.
type Annotation struct {
	Description string
	// Type is the raw documented type, e.g. "int[]", "string|null" or
	// "\Foo\Bar".
	Type  string
	Rules []Rule
}

// Annotations maps parameter names to their documentation. A nil map is a
// valid, empty set.
type Annotations map[string]Annotation

// Lookup returns the annotation documented for name.
func (a Annotations) Lookup(name string) (Annotation, bool) {
	an, ok := a[name]
	return an, ok
}

// Descriptor is the reconciled, immutable description of one formal
// parameter. Build it with Import; the zero value accepts any value.
type Descriptor struct {
	method      string
	name        string
	position    int
	description string
	rules       []Rule
	multiple    bool
	typ         string // "" means untyped
	class       string
	optional    bool
	hasDefault  bool
	def         Value
}

// Import reconciles structural metadata with the documentation of the same
// parameter. It never fails: documentation that cannot be interpreted leaves
// the parameter untyped.
func Import(p Param, docs Annotations) *Descriptor {
	d := &Descriptor{
		method:     p.Method,
		name:       p.Name,
		position:   p.Position,
		optional:   p.Optional,
		hasDefault: p.DefaultAvailable,
	}
	if p.DefaultAvailable {
		d.def = p.Default
	}

	doc, documented := docs.Lookup(p.Name)
	if documented {
		d.description = doc.Description
		if len(doc.Rules) > 0 {
			d.rules = append([]Rule(nil), doc.Rules...)
		}
	}

	switch {
	case p.IsArray:
		// Structural array-ness is terminal: the element type stays unknown.
		d.multiple = true
	case p.Class != "":
		d.typ = nativetype.Object
		d.class = normalizeClass(p.Class)
	case documented:
		d.multiple, d.typ, d.class = parseDocType(doc.Type)
	}
	return d
}

func parseDocType(raw string) (multiple bool, typ, class string) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return false, "", ""
	case strings.Contains(raw, "|"):
		return false, "", ""
	case raw == "mixed":
		// Kept as-is: a literal "mixed" never carries the suffix, so this
		// never sets multiple.
		return strings.Contains(raw, arraySuffix), "", ""
	}

	name := raw
	for strings.HasSuffix(name, arraySuffix) {
		name = strings.TrimSuffix(name, arraySuffix)
		multiple = true
	}
	if nativetype.IsNative(name) {
		return multiple, name, ""
	}
	name = normalizeClass(name)
	if name == "" {
		return multiple, "", ""
	}
	return multiple, nativetype.Object, name
}

func (d *Descriptor) Method() string      { return d.method }
func (d *Descriptor) Name() string        { return d.name }
func (d *Descriptor) Position() int       { return d.position }
func (d *Descriptor) Description() string { return d.description }
func (d *Descriptor) Multiple() bool      { return d.multiple }
func (d *Descriptor) Optional() bool      { return d.optional }

// Type returns the declared type, or "" when any value is accepted.
func (d *Descriptor) Type() string { return d.typ }

// Typed reports whether the descriptor declares a type.
func (d *Descriptor) Typed() bool { return d.typ != "" }

// Class returns the required class when Type is "object".
func (d *Descriptor) Class() string { return d.class }

// Default returns the default value and whether one is available.
func (d *Descriptor) Default() (Value, bool) { return d.def, d.hasDefault }

// Rules returns a copy of the validation rules in declaration order.
func (d *Descriptor) Rules() []Rule {
	if len(d.rules) == 0 {
		return nil
	}
	return append([]Rule(nil), d.rules...)
}

// String identifies the parameter for diagnostics.
func (d *Descriptor) String() string {
	if d.method == "" {
		return "$" + d.name
	}
	return d.method + "($" + d.name + ")"
}
