package signature

import (
	"github.com/ggoodman/smartinvoker-go/argument"
	"github.com/ggoodman/smartinvoker-go/nativetype"
	"github.com/invopop/jsonschema"
)

// Schema describes the named-argument form of the signature as a JSON Schema
// object. Required lists the non-optional parameters. When allowUnknown is
// false additionalProperties is set to false.
func (s *Signature) Schema(allowUnknown bool) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Type:       "object",
		Title:      s.method,
		Properties: jsonschema.NewProperties(),
	}
	for _, d := range s.params {
		root.Properties.Set(d.Name(), paramSchema(d))
		if !d.Optional() {
			root.Required = append(root.Required, d.Name())
		}
	}
	if !allowUnknown {
		root.AdditionalProperties = jsonschema.FalseSchema
	}
	return root
}

func paramSchema(d *argument.Descriptor) *jsonschema.Schema {
	elem := typeSchema(d)
	ps := elem
	if d.Multiple() {
		ps = &jsonschema.Schema{Type: "array"}
		if elem.Type != "" {
			ps.Items = elem
		}
	}
	ps.Description = d.Description()
	if def, ok := d.Default(); ok {
		ps.Default = def.Interface()
	}
	if rules := d.Rules(); len(rules) > 0 {
		names := make([]string, len(rules))
		for i, r := range rules {
			names[i] = r.Name
		}
		ps.Extras = map[string]any{"x-rules": names}
	}
	return ps
}

// typeSchema maps the declared element type onto JSON Schema. Types with no
// JSON rendition (callable, resource) and untyped parameters accept anything.
func typeSchema(d *argument.Descriptor) *jsonschema.Schema {
	switch d.Type() {
	case nativetype.Int:
		return &jsonschema.Schema{Type: "integer"}
	case nativetype.Float:
		return &jsonschema.Schema{Type: "number"}
	case nativetype.Bool:
		return &jsonschema.Schema{Type: "boolean"}
	case nativetype.String:
		return &jsonschema.Schema{Type: "string"}
	case nativetype.Array:
		return &jsonschema.Schema{Type: "array"}
	case nativetype.Null:
		return &jsonschema.Schema{Type: "null"}
	case nativetype.Object:
		s := &jsonschema.Schema{Type: "object"}
		if d.Class() != argument.MapClass {
			s.Title = d.Class()
		}
		return s
	}
	return &jsonschema.Schema{}
}
