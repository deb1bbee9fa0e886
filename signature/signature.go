package signature

import (
	"fmt"
	"sort"

	"github.com/ggoodman/smartinvoker-go/argument"
	"github.com/ggoodman/smartinvoker-go/internal/validation"
	"github.com/ggoodman/smartinvoker-go/introspect"
)

// Signature is the immutable, position-ordered parameter list of a method.
type Signature struct {
	method string
	params []*argument.Descriptor
	index  map[string]*argument.Descriptor
}

// New imports every parameter against docs and validates the resulting list.
// params may be supplied in any order; they are arranged by Position.
func New(method string, params []argument.Param, docs argument.Annotations) (*Signature, error) {
	ordered := append([]argument.Param(nil), params...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	s := &Signature{
		method: method,
		params: make([]*argument.Descriptor, 0, len(ordered)),
		index:  make(map[string]*argument.Descriptor, len(ordered)),
	}
	for _, p := range ordered {
		d := argument.Import(p, docs)
		s.params = append(s.params, d)
		s.index[d.Name()] = d
	}
	if err := validation.Signature(method, s.params); err != nil {
		return nil, fmt.Errorf("signature %s: %w", method, err)
	}
	return s, nil
}

// FromStruct builds the signature of method from a parameter struct; see
// package introspect for the field rules.
func FromStruct(method string, v any) (*Signature, error) {
	params, docs, err := introspect.Struct(method, v)
	if err != nil {
		return nil, err
	}
	return New(method, params, docs)
}

// MustFromStruct is FromStruct that panics on error, for package-level
// signature declarations.
func MustFromStruct(method string, v any) *Signature {
	s, err := FromStruct(method, v)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Signature) Method() string { return s.method }
func (s *Signature) Len() int       { return len(s.params) }

// Params returns the descriptors ordered by position.
func (s *Signature) Params() []*argument.Descriptor {
	return append([]*argument.Descriptor(nil), s.params...)
}

// Param returns the descriptor named name.
func (s *Signature) Param(name string) (*argument.Descriptor, bool) {
	d, ok := s.index[name]
	return d, ok
}
